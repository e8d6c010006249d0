package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/husseinfaraj7/odv-sub000/internal/models"
	"github.com/husseinfaraj7/odv-sub000/pkg/brevo"
)

// Notifier sends transactional emails for contact and order events.
// Implementations must be safe to call concurrently.
type Notifier interface {
	NotifyContactReceived(ctx context.Context, msg *models.ContactMessage) error
	NotifyOrderCreated(ctx context.Context, order *models.Order) error
	NotifyOrderStatusChanged(ctx context.Context, order *models.Order, previous models.OrderStatus) error
}

// statusLabels maps order statuses to the Italian wording used in customer
// emails.
var statusLabels = map[models.OrderStatus]string{
	models.StatusPending:    "in attesa di conferma",
	models.StatusConfirmed:  "confermato",
	models.StatusProcessing: "in lavorazione",
	models.StatusShipped:    "spedito",
	models.StatusDelivered:  "consegnato",
	models.StatusCancelled:  "annullato",
}

// EmailNotifier implements Notifier on top of the Brevo API.
type EmailNotifier struct {
	sender      brevo.Sender
	senderName  string
	senderEmail string
	adminEmail  string
}

// NewEmailNotifier creates an EmailNotifier. adminEmail receives copies of
// contact and order notifications.
func NewEmailNotifier(sender brevo.Sender, senderName, senderEmail, adminEmail string) *EmailNotifier {
	return &EmailNotifier{
		sender:      sender,
		senderName:  senderName,
		senderEmail: senderEmail,
		adminEmail:  adminEmail,
	}
}

var _ Notifier = (*EmailNotifier)(nil)

func (n *EmailNotifier) from() brevo.Recipient {
	return brevo.Recipient{Name: n.senderName, Email: n.senderEmail}
}

// NotifyContactReceived informs the administrator about a new contact form
// submission.
func (n *EmailNotifier) NotifyContactReceived(ctx context.Context, msg *models.ContactMessage) error {
	subject := "Nuovo messaggio dal modulo contatti"
	if msg.Subject != "" {
		subject = fmt.Sprintf("Nuovo messaggio: %s", msg.Subject)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hai ricevuto un nuovo messaggio dal sito.\n\n")
	fmt.Fprintf(&b, "Nome: %s\n", msg.Name)
	fmt.Fprintf(&b, "Email: %s\n", msg.Email)
	if msg.Phone != "" {
		fmt.Fprintf(&b, "Telefono: %s\n", msg.Phone)
	}
	fmt.Fprintf(&b, "\nMessaggio:\n%s\n", msg.Message)

	return n.sender.SendEmail(ctx, brevo.SendEmailParams{
		Sender:      n.from(),
		To:          []brevo.Recipient{{Email: n.adminEmail}},
		Subject:     subject,
		TextContent: b.String(),
	})
}

// NotifyOrderCreated sends the order confirmation to the customer and a copy
// to the administrator.
func (n *EmailNotifier) NotifyOrderCreated(ctx context.Context, order *models.Order) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Ciao %s,\n\ngrazie per il tuo ordine! Ecco il riepilogo:\n\n", order.CustomerName)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "  %d x %s — %.2f €\n", item.Quantity, item.ProductName, item.UnitPrice)
	}
	fmt.Fprintf(&b, "\nTotale: %.2f €\n", order.TotalAmount)
	fmt.Fprintf(&b, "\nSpedizione a:\n%s\n%s %s\n", order.ShippingAddress, order.ShippingPostalCode, order.ShippingCity)
	fmt.Fprintf(&b, "\nTi avviseremo quando l'ordine sarà confermato.\n")

	err := n.sender.SendEmail(ctx, brevo.SendEmailParams{
		Sender:      n.from(),
		To:          []brevo.Recipient{{Name: order.CustomerName, Email: order.CustomerEmail}},
		Subject:     fmt.Sprintf("Conferma ordine %s", order.ID),
		TextContent: b.String(),
	})
	if err != nil {
		return err
	}

	return n.sender.SendEmail(ctx, brevo.SendEmailParams{
		Sender:      n.from(),
		To:          []brevo.Recipient{{Email: n.adminEmail}},
		Subject:     fmt.Sprintf("Nuovo ordine ricevuto (%s)", order.ID),
		TextContent: fmt.Sprintf("Nuovo ordine di %s (%s), totale %.2f €.", order.CustomerName, order.CustomerEmail, order.TotalAmount),
	})
}

// NotifyOrderStatusChanged informs the customer that the order moved to a new
// status.
func (n *EmailNotifier) NotifyOrderStatusChanged(ctx context.Context, order *models.Order, previous models.OrderStatus) error {
	label, ok := statusLabels[order.Status]
	if !ok {
		label = strings.ToLower(string(order.Status))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ciao %s,\n\nil tuo ordine %s è ora %s.\n", order.CustomerName, order.ID, label)
	if order.Status == models.StatusShipped {
		fmt.Fprintf(&b, "\nRiceverai la consegna a:\n%s\n%s %s\n", order.ShippingAddress, order.ShippingPostalCode, order.ShippingCity)
	}
	fmt.Fprintf(&b, "\nGrazie per il tuo sostegno!\n")

	return n.sender.SendEmail(ctx, brevo.SendEmailParams{
		Sender:      n.from(),
		To:          []brevo.Recipient{{Name: order.CustomerName, Email: order.CustomerEmail}},
		Subject:     fmt.Sprintf("Aggiornamento ordine %s", order.ID),
		TextContent: b.String(),
	})
}
