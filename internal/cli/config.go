package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI settings, resolved from environment variables with flags
// layered on top by the root command.
type Config struct {
	ServerURL string
	Token     string
	TokenFile string
	Output    string
}

// DefaultConfig resolves settings from ROLLBOOK_* environment variables.
func DefaultConfig() *Config {
	return &Config{
		ServerURL: envOr("ROLLBOOK_SERVER", "http://localhost:4000"),
		Token:     os.Getenv("ROLLBOOK_TOKEN"),
		TokenFile: envOr("ROLLBOOK_TOKEN_FILE", defaultTokenFile()),
		Output:    "text",
	}
}

// LoadToken reads the cached token from disk unless one was already supplied
// via flag or environment. A missing token file just means "not signed in".
func (c *Config) LoadToken() error {
	if c.Token != "" {
		return nil
	}

	data, err := os.ReadFile(c.TokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	c.Token = strings.TrimSpace(string(data))
	return nil
}

// SaveToken caches the token for later invocations. The file is mode 0600
// since the token is a live credential.
func (c *Config) SaveToken(token string) error {
	c.Token = token

	if err := os.MkdirAll(filepath.Dir(c.TokenFile), 0700); err != nil {
		return err
	}
	return os.WriteFile(c.TokenFile, []byte(token), 0600)
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rollbook/token"
	}
	return filepath.Join(home, ".rollbook", "token")
}

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
