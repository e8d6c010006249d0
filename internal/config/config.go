// Package config loads application settings from environment variables and
// normalizes the database connection URL.
package config

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds all runtime configuration for the backend.
type Config struct {
	ListenAddr  string
	DatabaseDSN string
	JWTSecret   string
	BrevoAPIKey string
	AdminEmail  string
	SenderEmail string
	SenderName  string
	RabbitMQURL string
	CORSOrigins string
}

// Load reads configuration from environment variables via Viper. It fails
// fast when the database URL is missing or malformed, logging a diagnostic
// that names the broken segment without leaking the password.
func Load(log *zap.SugaredLogger) (*Config, error) {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("SENDER_NAME", "ODV Shop")
	viper.SetDefault("SUPABASE_DB_PORT", "5432")
	viper.AutomaticEnv()

	cfg := &Config{
		ListenAddr:  ":" + viper.GetString("PORT"),
		JWTSecret:   viper.GetString("JWT_SECRET"),
		BrevoAPIKey: viper.GetString("BREVO_API_KEY"),
		AdminEmail:  viper.GetString("ADMIN_EMAIL"),
		SenderEmail: viper.GetString("SENDER_EMAIL"),
		SenderName:  viper.GetString("SENDER_NAME"),
		RabbitMQURL: viper.GetString("RABBITMQ_URL"),
		CORSOrigins: viper.GetString("CORS_ORIGINS"),
	}

	rawURL := viper.GetString("DATABASE_URL")
	if rawURL != "" {
		dsn, err := NormalizeDatabaseURL(rawURL)
		if err != nil {
			log.Errorw("DATABASE_URL is malformed",
				"url", Redact(rawURL),
				"error", err,
			)
			return nil, fmt.Errorf("invalid DATABASE_URL: %w", err)
		}
		cfg.DatabaseDSN = dsn
	} else {
		log.Info("DATABASE_URL not set, assembling from SUPABASE_DB_* variables")
		dsn, err := BuildDatabaseURL(
			viper.GetString("SUPABASE_DB_HOST"),
			viper.GetString("SUPABASE_DB_PORT"),
			viper.GetString("SUPABASE_DB_NAME"),
			viper.GetString("SUPABASE_DB_USER"),
			viper.GetString("SUPABASE_DB_PASSWORD"),
		)
		if err != nil {
			return nil, fmt.Errorf("neither DATABASE_URL nor SUPABASE_DB_* settings are usable: %w", err)
		}
		cfg.DatabaseDSN = dsn
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.BrevoAPIKey == "" {
		log.Warn("BREVO_API_KEY not set, email notifications are disabled")
	}

	log.Infow("configuration loaded",
		"listen_addr", cfg.ListenAddr,
		"database", Redact(cfg.DatabaseDSN),
		"email_enabled", cfg.BrevoAPIKey != "",
		"rabbitmq_enabled", cfg.RabbitMQURL != "",
	)
	return cfg, nil
}
