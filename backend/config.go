package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ========== 設定 ==========
type Config struct {
	Port        string
	CORSOrigins []string

	// STORE_DRIVER: mongo 或 file
	StoreDriver string
	MongoURI    string
	MongoDB     string
	DataFile    string

	GeminiAPIKey    string
	GeminiModel     string
	Temperature     float32
	TopP            float32
	MaxOutputTokens int32
	MockDelay       time.Duration

	UnsplashAccessKey string
	UnsplashBaseURL   string
	PhotoRPS          float64
	PhotoConcurrency  int
}

// loadConfig 先讀 .env（沒有也沒關係），再從環境變數取值。
func loadConfig() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env: %v", err)
	}

	return Config{
		Port:        getenv("PORT", "8080"),
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "http://localhost:5173,http://localhost:8080")),

		StoreDriver: getenv("STORE_DRIVER", "mongo"),
		MongoURI:    getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getenv("MONGO_DB", "go_travel"),
		DataFile:    getenv("DATA_FILE", "../data/plans_data.json"),

		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getenv("GEMINI_MODEL", "gemini-2.5-flash-lite"),
		Temperature:     float32(getenvFloat("GEMINI_TEMPERATURE", 0.7)),
		TopP:            float32(getenvFloat("GEMINI_TOP_P", 0.8)),
		MaxOutputTokens: int32(getenvInt("GEMINI_MAX_TOKENS", 8192)),
		MockDelay:       time.Duration(getenvInt("MOCK_DELAY_MS", 300)) * time.Millisecond,

		UnsplashAccessKey: os.Getenv("UNSPLASH_ACCESS_KEY"),
		UnsplashBaseURL:   getenv("UNSPLASH_BASE_URL", "https://api.unsplash.com"),
		PhotoRPS:          getenvFloat("PHOTO_RPS", 5),
		PhotoConcurrency:  getenvInt("PHOTO_CONCURRENCY", 4),
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using %g", key, v, def)
		return def
	}
	return f
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
