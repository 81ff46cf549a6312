package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Admin    AdminConfig
	Quiz     QuizConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type AdminConfig struct {
	Email        string
	PasswordHash string // bcrypt hash of the admin password
	JWTSecret    string
}

type QuizConfig struct {
	// SessionStore selects the session backend: "redis" (default, so a
	// restart does not drop in-flight conversations) or "memory".
	SessionStore      string
	SessionTTLMinutes int
	ResultTopic       string
	Thresholds        ThresholdConfig
}

// ThresholdConfig exposes the confidence engine tuning through the
// environment. Defaults mirror catalog.DefaultThresholds.
type ThresholdConfig struct {
	ClearTopScore      float64
	ClearGap           float64
	PairGap            float64
	PairFloor          float64
	BlendFraction      float64
	StrongConfidence   float64
	ModerateConfidence float64
	MaxForkRounds      int
	MaxCorrections     int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Archetype Quiz"),
		},
		Admin: AdminConfig{
			Email:        getEnv("ADMIN_EMAIL", ""),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			JWTSecret:    getEnv("JWT_SECRET", "default_secret"),
		},
		Quiz: QuizConfig{
			SessionStore:      getEnv("SESSION_STORE", "redis"),
			SessionTTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 60),
			ResultTopic:       getEnv("QUIZ_RESULT_TOPIC_NAME", "RESULT_COMPLETED"),
			Thresholds: ThresholdConfig{
				ClearTopScore:      getEnvAsFloat("QUIZ_CLEAR_TOP_SCORE", 2),
				ClearGap:           getEnvAsFloat("QUIZ_CLEAR_GAP", 1),
				PairGap:            getEnvAsFloat("QUIZ_PAIR_GAP", 1),
				PairFloor:          getEnvAsFloat("QUIZ_PAIR_FLOOR", 2),
				BlendFraction:      getEnvAsFloat("QUIZ_BLEND_FRACTION", 0.25),
				StrongConfidence:   getEnvAsFloat("QUIZ_STRONG_CONFIDENCE", 0.70),
				ModerateConfidence: getEnvAsFloat("QUIZ_MODERATE_CONFIDENCE", 0.55),
				MaxForkRounds:      getEnvAsInt("QUIZ_MAX_FORK_ROUNDS", 2),
				MaxCorrections:     getEnvAsInt("QUIZ_MAX_CORRECTIONS", 2),
			},
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
