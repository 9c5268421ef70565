package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
}

type Config struct {
	DatabaseURL    string
	Port           string
	JWTSecret      string
	Environment    string
	AllowedOrigins []string
	R2             R2Config
}

var Envs = initConfig()

func initConfig() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found")
	}

	return Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Port:        getEnv("PORT", "5001"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key-portfolio-2025"),
		Environment: getEnv("ENV", "development"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS",
			"http://localhost:5173,http://localhost:5174,http://localhost:5175,"+
				"http://localhost:3000,http://localhost:5001,"+
				"https://chandru-wp.github.io,https://chandrukannan.me")),
		R2: R2Config{
			AccountID:       getEnv("R2_ACCOUNT_ID", ""),
			AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnv("R2_BUCKET_NAME", ""),
			Region:          getEnv("R2_REGION", "auto"),
		},
	}
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// MediaEnabled reports whether object storage credentials are configured.
func (c Config) MediaEnabled() bool {
	return c.R2.AccessKeyID != "" && c.R2.SecretAccessKey != "" && c.R2.BucketName != ""
}
