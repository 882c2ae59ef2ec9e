package cli

import (
	"os"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	PIN       string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("COURTQUEUE_SERVER", "http://localhost:8080"),
		PIN:       os.Getenv("COURTQUEUE_PIN"),
		Output:    "text",
		Verbose:   false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
