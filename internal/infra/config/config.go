package config

import (
	"os"
	"strings"
)

// Config is the environment-resolved runtime configuration. Everything has
// a sensible local-development default except the GCP project id, which the
// infra layer treats as a hard requirement.
type Config struct {
	Port string

	// GCP
	ProjectID       string
	CredentialsFile string

	// Stores
	ImageBucket string
	RTDBURL     string

	// Invoice outputs
	InvoiceDir  string
	PrinterAddr string

	// Ops mail (optional; mailer disabled when empty)
	SendGridAPIKey string
	MailFrom       string
	MailTo         string

	// CORS
	AllowedOrigins []string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port: getenvDefault("PORT", "8080"),

		ProjectID:       resolveProjectID(),
		CredentialsFile: getenvDefault("GOOGLE_APPLICATION_CREDENTIALS", ""),

		ImageBucket: getenvDefault("IMAGE_BUCKET", ""),
		RTDBURL:     getenvDefault("RTDB_URL", ""),

		InvoiceDir:  getenvDefault("INVOICE_DIR", "invoices"),
		PrinterAddr: getenvDefault("PRINTER_ADDR", ""),

		SendGridAPIKey: getenvDefault("SENDGRID_API_KEY", ""),
		MailFrom:       getenvDefault("MAIL_FROM", ""),
		MailTo:         getenvDefault("MAIL_TO", ""),

		AllowedOrigins: splitList(getenvDefault("ALLOWED_ORIGINS", "*")),
	}
}

func resolveProjectID() string {
	// Cloud Run sets GOOGLE_CLOUD_PROJECT; local dev usually sets
	// FIREBASE_PROJECT_ID alongside the credentials file.
	for _, k := range []string{
		"GCP_PROJECT_ID",
		"GOOGLE_CLOUD_PROJECT",
		"FIREBASE_PROJECT_ID",
	} {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func getenvDefault(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
