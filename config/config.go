package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort    = 3000
	DefaultBuildID = "local"
)

// Config is read once at startup and handed to the server by value.
type Config struct {
	Port        int
	BuildID     string
	CORSOrigins []string
	RateLimit   int // requests per minute per client IP, 0 disables
}

// LoadConfig reads the environment, after an optional .env file. Invalid
// values fall back to defaults, so it currently never returns an error.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	buildID := os.Getenv("BUILD_ID")
	if buildID == "" {
		buildID = DefaultBuildID
	}

	origins := splitCSV(os.Getenv("CORS_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:        ResolvePort(os.Getenv("PORT")),
		BuildID:     buildID,
		CORSOrigins: origins,
		RateLimit:   resolveRateLimit(os.Getenv("RATE_LIMIT")),
	}, nil
}

// ResolvePort returns the TCP port named by raw, or DefaultPort when raw is
// empty, not a number, or outside 1..65535.
func ResolvePort(raw string) int {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || port < 1 || port > 65535 {
		return DefaultPort
	}
	return port
}

func resolveRateLimit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
