package config

import "time"

// APIConfig holds runtime configuration for the auth API service.
type APIConfig struct {
	Environment   string
	Addr          string
	DatabaseURL   string
	MigrationsDir string
	JWTSecret     string
	TokenTTL      time.Duration
	AllowedOrigin string
}

// LoadAPIConfig constructs an APIConfig from environment variables.
func LoadAPIConfig() APIConfig {
	return APIConfig{
		Environment:   GetString("APP_ENV", "development"),
		Addr:          GetString("API_ADDR", ":5001"),
		DatabaseURL:   GetString("DATABASE_URL", "postgres://gopesa:gopesa@db:5432/gopesa?sslmode=disable"),
		MigrationsDir: GetString("DB_MIGRATIONS_DIR", "db/migrations"),
		JWTSecret:     GetString("JWT_SECRET", ""),
		TokenTTL:      GetDuration("TOKEN_TTL", time.Hour),
		AllowedOrigin: GetString("CORS_ALLOWED_ORIGIN", "https://go-pesa-platform.vercel.app"),
	}
}
