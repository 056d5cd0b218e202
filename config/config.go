package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	JWTKey string

	DBDriver   string // sqlite, postgres or mysql
	DBName     string
	DBHost     string
	DBUser     string
	DBPassword string
	DBPort     string

	AppName      string // payee/merchant display name on QR and wallet intents
	UPIID        string // VPA the UPI deep link pays into
	MerchantID   string
	GatewayName  string // tokenization gateway handed to the wallet widget
	CurrencyCode string

	// Optional transaction lookup endpoint. Empty means client-asserted
	// transaction ids are trusted as-is.
	PaymentVerifyURL string

	SendGridKey string
	EmailSender string
	Password    string // SMTP Password

	RosterAuditCron string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "4000"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBName:     getEnv("DB_NAME", "studynotion.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBPort:     getEnv("DB_PORT", "5432"),

		AppName:      getEnv("APP_NAME", "StudyNotion"),
		UPIID:        getEnv("UPI_ID", "studynotion@upi"),
		MerchantID:   getEnv("MERCHANT_ID", "BCR2DN4TXXXXXXXX"),
		GatewayName:  getEnv("PAYMENT_GATEWAY_NAME", "example"),
		CurrencyCode: getEnv("CURRENCY_CODE", "INR"),

		PaymentVerifyURL: getEnv("PAYMENT_VERIFY_URL", ""),

		SendGridKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("PASSWORD", ""),

		RosterAuditCron: getEnv("ROSTER_AUDIT_CRON", "@hourly"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.PaymentVerifyURL == "" {
		log.Println("Warning: PAYMENT_VERIFY_URL not set. Client transaction ids are trusted without lookup.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
