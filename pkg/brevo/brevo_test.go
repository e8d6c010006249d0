package brevo_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/husseinfaraj7/odv-sub000/pkg/brevo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendEmail(t *testing.T) {
	var gotAPIKey string
	var gotPayload brevo.SendEmailParams

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/smtp/email", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotAPIKey = r.Header.Get("api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := brevo.NewClient("test-key")
	client.BaseURL = server.URL

	err := client.SendEmail(context.Background(), brevo.SendEmailParams{
		Sender:      brevo.Recipient{Name: "Shop", Email: "noreply@example.org"},
		To:          []brevo.Recipient{{Email: "admin@example.org"}},
		Subject:     "Nuovo ordine",
		TextContent: "Hai ricevuto un nuovo ordine.",
	})
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotAPIKey)
	assert.Equal(t, "Nuovo ordine", gotPayload.Subject)
	assert.Equal(t, "admin@example.org", gotPayload.To[0].Email)
	assert.Equal(t, "noreply@example.org", gotPayload.Sender.Email)
}

func TestSendEmailErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"unauthorized","message":"Key not found"}`))
	}))
	defer server.Close()

	client := brevo.NewClient("bad-key")
	client.BaseURL = server.URL

	err := client.SendEmail(context.Background(), brevo.SendEmailParams{
		Sender:  brevo.Recipient{Email: "noreply@example.org"},
		To:      []brevo.Recipient{{Email: "admin@example.org"}},
		Subject: "test",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "Key not found")
}

func TestSendEmailRequiresRecipients(t *testing.T) {
	client := brevo.NewClient("key")
	err := client.SendEmail(context.Background(), brevo.SendEmailParams{Subject: "x"})
	assert.Error(t, err)
}
