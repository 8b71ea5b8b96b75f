package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port            string
	MongoURI        string
	MongoDB         string
	FrontendURL     string
	SMTPHost        string
	SMTPPort        string
	SMTPUser        string
	SMTPPass        string
	EmailFrom       string
	RedisAddr       string
	RateLimitPerMin int
	RabbitURL       string
}

func Load() Config {
	return Config{
		Port:            getenv("APP_PORT", "8080"),
		MongoURI:        getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getenv("MONGO_DB", "interviewmate"),
		FrontendURL:     getenv("FRONTEND_URL", "http://localhost:5173"),
		SMTPHost:        getenv("SMTP_HOST", ""),
		SMTPPort:        getenv("SMTP_PORT", "587"),
		SMTPUser:        getenv("SMTP_USER", ""),
		SMTPPass:        getenv("SMTP_PASS", ""),
		EmailFrom:       getenv("EMAIL_FROM", "no-reply@interviewmate.app"),
		RedisAddr:       getenv("REDIS_ADDR", ""),
		RateLimitPerMin: atoi(getenv("RATE_LIMIT_PER_MIN", "5")),
		RabbitURL:       getenv("RABBIT_URL", ""),
	}
}

func atoi(s string) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return 0
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
