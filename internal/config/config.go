package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultAllowedOrigins are the development and production hosts of the
// portfolio frontend.
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"https://localhost:5173",
	"http://127.0.0.1:5173",
	"https://sachin-portfolio-sigma.vercel.app",
	"https://jhasachin02.github.io",
}

type Config struct {
	// Server
	Port        string
	Env         string
	ServiceName string

	// Gemini AI
	GeminiAPIKey         string
	GeminiModel          string
	GeminiTemperature    *float32
	GeminiTimeoutSeconds int

	// Prompt
	PromptContextFile string

	// CORS
	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                 getEnvOrDefault("PORT", "3001"),
		Env:                  getEnvOrDefault("ENV", "development"),
		ServiceName:          getEnvOrDefault("SERVICE_NAME", "Portfolio Chatbot API"),
		GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
		GeminiModel:          getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiTemperature:    getEnvAsFloat32(os.Getenv("GEMINI_TEMPERATURE")),
		GeminiTimeoutSeconds: getEnvAsIntOrDefault("GEMINI_TIMEOUT_SECONDS", 45),
		PromptContextFile:    os.Getenv("PROMPT_CONTEXT_FILE"),
		AllowedOrigins:       getEnvAsListOrDefault("CORS_ALLOWED_ORIGINS", DefaultAllowedOrigins),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return defaultVal
	}
	return n
}

// getEnvAsListOrDefault splits a comma-separated value, dropping blanks.
func getEnvAsListOrDefault(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if strings.TrimSpace(val) == "" {
		return defaultVal
	}
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}

func getEnvAsFloat32(val string) *float32 {
	if val == "" {
		return nil
	}
	f, err := strconv.ParseFloat(val, 32)
	if err != nil {
		return nil
	}
	f32 := float32(f)
	return &f32
}
