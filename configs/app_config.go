package configs

import (
	"os"

	"github.com/joho/godotenv"

	"kartichka.link/configs/configslog"
)

// AppConfig държи всички настройки, четени от средата при старт.
type AppConfig struct {
	ListenAddr  string
	AppEnv      string
	DatabaseDSN string

	// Email (Resend)
	ResendAPIKey string
	AppEmail     string // фиксиран "from" адрес
	AdminEmail   string // операторски адрес, винаги в получателите

	// Обектно хранилище за аудио записите
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool
	// Публичен базов URL, от който се сглобява audioUrl
	StoragePublicBaseURL string
}

var appConfig *AppConfig

// LoadConfig зарежда .env (ако има) и попълва AppConfig от средата.
func LoadConfig() *AppConfig {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info(".env файл не е намерен, използва се само средата.")
	}

	appConfig = &AppConfig{
		ListenAddr:  getEnv("LISTEN_ADDR", ":3000"),
		AppEnv:      getEnv("APP_ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=kartichka password=kartichka dbname=kartichka port=5432 sslmode=disable"),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		AppEmail:     getEnv("APP_EMAIL", "kartichki@kartichka.link"),
		AdminEmail:   os.Getenv("ADMIN_EMAIL"),

		StorageEndpoint:      getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		StorageAccessKey:     os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey:     os.Getenv("STORAGE_SECRET_KEY"),
		StorageBucket:        getEnv("STORAGE_BUCKET", "card-audio"),
		StorageUseSSL:        getEnv("STORAGE_USE_SSL", "false") == "true",
		StoragePublicBaseURL: getEnv("STORAGE_PUBLIC_BASE_URL", "http://localhost:9000/card-audio"),
	}
	return appConfig
}

// GetConfig връща заредената конфигурация (LoadConfig трябва да е извикан).
func GetConfig() *AppConfig {
	if appConfig == nil {
		return LoadConfig()
	}
	return appConfig
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
