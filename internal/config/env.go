package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file when present. Lambda and CI rely on real
// environment variables, so a missing file is not an error.
func LoadEnv() {
	_ = godotenv.Load()
}

// TopicDenylist returns the topic names hidden from student listings,
// parsed from the comma-separated TOPIC_DENYLIST variable.
func TopicDenylist() []string {
	raw := os.Getenv("TOPIC_DENYLIST")
	if raw == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
