package config

import (
	"os"
	"strings"
)

// Config collects everything read from the environment at startup.
type Config struct {
	AppEnv string
	Port   string

	DBDSN string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	SolanaRPCURL string
	// PaymentMode selects the payment adapter: "rpc" or "mock".
	PaymentMode string
}

func Load() Config {
	cfg := Config{
		AppEnv: strings.ToLower(getenv("APP_ENV", "development")),
		Port:   getenv("PORT", "8080"),

		DBDSN: os.Getenv("DB_DSN"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryFolder:    getenv("CLOUDINARY_FOLDER", "watches"),

		SolanaRPCURL: getenv("SOLANA_RPC_URL", "https://api.mainnet-beta.solana.com"),
		PaymentMode:  strings.ToLower(getenv("PAYMENT_MODE", "mock")),
	}
	if strings.TrimSpace(cfg.DBDSN) == "" {
		cfg.DBDSN = buildDSN()
	}
	return cfg
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

func buildDSN() string {
	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	user := getenv("DB_USER", getenv("POSTGRES_USER", "postgres"))
	pass := getenv("DB_PASSWORD", getenv("POSTGRES_PASSWORD", "postgres"))
	name := getenv("DB_NAME", getenv("POSTGRES_DB", "watchfi"))
	ssl := getenv("DB_SSLMODE", "disable")
	return "host=" + host + " user=" + user + " password=" + pass +
		" dbname=" + name + " port=" + port + " sslmode=" + ssl
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
