package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 2333
	defaultEnv        = "development"
	defaultAdminEmail = "admin@example.com"
	defaultSiteTitle  = "Amadeu Dias | Cloud & DevOps"
	defaultSiteDesc   = "Artigos sobre AWS, DevOps, Kubernetes e FinOps."
	defaultSiteURL    = "http://localhost:2333"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int         `yaml:"port"`
	Env            string      `yaml:"env"` // "development" | "production"
	JWTSecret      string      `yaml:"jwt_secret"`
	AllowedOrigins []string    `yaml:"allowed_origins"`
	Admin          AdminConfig `yaml:"admin"`
	Site           SiteConfig  `yaml:"site"`
}

// AdminConfig is the static credential pair guarding the admin surface.
// Password may be plaintext or a bcrypt hash.
type AdminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// SiteConfig feeds the feed/sitemap metadata.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

// Load reads the YAML config. A missing file is not an error: the server is
// fully seeded in memory and runs out of the box on defaults.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	raw := AppConfig{}
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	applyRawAppConfig(&cfg, raw)
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d in %q, expected 1-65535", cfg.Port, path)
	}
	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Admin: AdminConfig{
			Email: defaultAdminEmail,
		},
		Site: SiteConfig{
			Title:       defaultSiteTitle,
			Description: defaultSiteDesc,
			URL:         defaultSiteURL,
		},
	}
}

func applyRawAppConfig(cfg *AppConfig, raw AppConfig) {
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = strings.ToLower(v)
	}
	if v := strings.TrimSpace(raw.JWTSecret); v != "" {
		cfg.JWTSecret = v
	}
	if raw.AllowedOrigins != nil {
		cfg.AllowedOrigins = normalizeOrigins(raw.AllowedOrigins)
	}
	if v := strings.TrimSpace(raw.Admin.Email); v != "" {
		cfg.Admin.Email = v
	}
	if v := strings.TrimSpace(raw.Admin.Password); v != "" {
		cfg.Admin.Password = v
	}
	if v := strings.TrimSpace(raw.Site.Title); v != "" {
		cfg.Site.Title = v
	}
	if v := strings.TrimSpace(raw.Site.Description); v != "" {
		cfg.Site.Description = v
	}
	if v := strings.TrimSpace(raw.Site.URL); v != "" {
		cfg.Site.URL = strings.TrimRight(v, "/")
	}
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, defaultEnv)
}
