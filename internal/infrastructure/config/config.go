package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is the process configuration. Values come from the environment; cmd/api loads a
// .env file first through godotenv.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - LOG_MODE (default: dev; "prod" switches to JSON logs)
//   - JWT_SECRET (required to serve authenticated routes)
//   - CORS_ALLOWED_ORIGINS (comma separated; default: local dev origins)
//   - TAXONOMY_FILE (optional; overrides the embedded taxonomy)
//   - MAINTENANCE_TOKEN (optional; enables the maintenance routes)
//   - MERCADOPAGO_ACCESS_TOKEN (optional; enables card payments)
//   - PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK (optional; approves card payments locally)
type Config struct {
	Port                   int
	LogMode                string
	JWTSecret              string
	AllowedOrigins         []string
	TaxonomyFile           string
	MaintenanceToken       string
	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
}

var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

func Load() Config {
	return Config{
		Port:                   getenvInt("PORT", 8080),
		LogMode:                getenvDefault("LOG_MODE", "dev"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		AllowedOrigins:         getenvList("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins),
		TaxonomyFile:           strings.TrimSpace(os.Getenv("TAXONOMY_FILE")),
		MaintenanceToken:       strings.TrimSpace(os.Getenv("MAINTENANCE_TOKEN")),
		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		PaymentGatewayMock:     getenvBool("PAYMENT_GATEWAY_MOCK") || getenvBool("MERCADOPAGO_MOCK"),
	}
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil || i <= 0 {
		return def
	}
	return i
}

func getenvList(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
