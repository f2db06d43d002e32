package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port         string
	AppEnv       string
	JWTSecret    string
	JWTExpiresIn string // minutes
	// username:password:role triples, comma separated
	DemoUsers string
	// Assistant / text generation
	GenAIURL     string
	GenAITimeout string
	GenAIEnabled string
	// HTTP
	CORSAllowOrigins string
	// Status derivation
	Timezone   string
	LoginDelay string
}

func Load() *Config {
	return &Config{
		Port:             getenv("PORT", "8080"),
		AppEnv:           getenv("APP_ENV", "development"),
		JWTSecret:        getenv("JWT_SECRET", "supersecret_change_me"),
		JWTExpiresIn:     getenv("JWT_EXPIRES_IN", "60"),
		DemoUsers:        getenv("DEMO_USERS", "student:student123:student,admin:admin123:admin,john.doe:password:student,jane.smith:password:student"),
		GenAIURL:         getenv("GENAI_URL", "http://localhost:3001/api/gemini"),
		GenAITimeout:     getenv("GENAI_TIMEOUT", "8s"),
		GenAIEnabled:     getenv("GENAI_ENABLED", "true"),
		CORSAllowOrigins: getenv("CORS_ALLOW_ORIGINS", "*"),
		Timezone:         getenv("TIMEZONE", "Local"),
		LoginDelay:       getenv("LOGIN_DELAY", "0s"),
	}
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// TokenTTL falls back to one hour on unparsable values.
func (c *Config) TokenTTL() time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(c.JWTExpiresIn) + "m")
	if err != nil || d <= 0 {
		return 60 * time.Minute
	}
	return d
}

func (c *Config) AssistantTimeout() time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(c.GenAITimeout))
	if err != nil || d <= 0 {
		return 8 * time.Second
	}
	return d
}

func (c *Config) AssistantEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(c.GenAIEnabled)) {
	case "false", "0", "no", "off":
		return false
	}
	return c.GenAIURL != ""
}

func (c *Config) LoginLatency() time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(c.LoginDelay))
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// Location resolves TIMEZONE; unknown names fall back to the process local zone.
func (c *Config) Location() *time.Location {
	name := strings.TrimSpace(c.Timezone)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSAllowOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
