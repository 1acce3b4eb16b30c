package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	// Postgres connection settings
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	// Redis connection settings
	RedisAddr     string
	RedisPassword string

	// JWT signing secret
	JWTSecret string

	// SMTP settings for passcode and password reset emails
	MailHost     string
	MailPort     string
	MailUsername string
	MailPassword string

	// ClientUrl is the base URL of the frontend, used in emails and
	// as the prefix of the login routes returned on auth failures
	ClientUrl string

	// DefaultPassword overrides the seeded admin password when set
	DefaultPassword string

	// ServerPort is the port the API listens on
	ServerPort string
)

// LoadConfig reads the .env file if present and populates the package variables.
// Must be called before InitDB or any service that reads configuration.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "contesthub")

	RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	JWTSecret = getEnv("JWT_SECRET", "")
	if JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	MailHost = getEnv("MAIL_HOST", "")
	MailPort = getEnv("MAIL_PORT", "587")
	MailUsername = getEnv("MAIL_USERNAME", "")
	MailPassword = getEnv("MAIL_PASSWORD", "")

	ClientUrl = getEnv("CLIENT_URL", "http://localhost:3000")
	DefaultPassword = getEnv("DEFAULT_ADMIN_PASSWORD", "")
	ServerPort = getEnv("SERVER_PORT", "8080")
}

// getEnv returns the value of the environment variable or the fallback if unset
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
