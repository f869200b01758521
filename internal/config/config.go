// Package config resolves the monitor's configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/r-ising/molzberg-monitor/internal/extractor"
	"github.com/r-ising/molzberg-monitor/internal/fetcher"
	"github.com/r-ising/molzberg-monitor/internal/storage"
)

// Config holds everything a run needs. Required secrets come from the
// environment; the rest have defaults and can be overridden by flags.
type Config struct {
	// Gemini
	GeminiAPIKey string
	GeminiModel  string

	// Mailjet
	MailjetPublicKey  string
	MailjetPrivateKey string
	SenderEmail       string
	RecipientEmail    string

	TargetURL string
	StateFile string
}

// Load reads configuration from the environment.
func Load() Config {
	return Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getenv("GEMINI_MODEL", extractor.DefaultModel),

		MailjetPublicKey:  os.Getenv("MAILJET_API_KEY_PUBLIC"),
		MailjetPrivateKey: os.Getenv("MAILJET_API_KEY_PRIVATE"),
		SenderEmail:       os.Getenv("MAILJET_SENDER_EMAIL"),
		RecipientEmail:    os.Getenv("RECIPIENT_EMAIL"),

		TargetURL: getenv("TARGET_URL", fetcher.DefaultURL),
		StateFile: getenv("STATE_FILE", storage.DefaultStateFile),
	}
}

// Validate reports every missing required setting at once, so a broken
// deployment is fixed in one pass. It runs before any network call.
func (c Config) Validate() error {
	var missing []string

	required := []struct {
		name  string
		value string
	}{
		{"GEMINI_API_KEY", c.GeminiAPIKey},
		{"MAILJET_API_KEY_PUBLIC", c.MailjetPublicKey},
		{"MAILJET_API_KEY_PRIVATE", c.MailjetPrivateKey},
		{"MAILJET_SENDER_EMAIL", c.SenderEmail},
		{"RECIPIENT_EMAIL", c.RecipientEmail},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
