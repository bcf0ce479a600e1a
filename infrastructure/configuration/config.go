package configuration

import (
	"errors"
	"os"
	"strings"
	"time"

	"publisher-gateway/infrastructure/logger"

	"github.com/spf13/viper"
)

const (
	DefaultAPIVersion        = "v20.0"
	DefaultGraphBaseURL      = "https://graph.facebook.com"
	DefaultPort              = 5000
	DefaultPhotoCommentLabel = "📸 Ảnh liên quan:"
)

var ErrMissingCredentials = errors.New("missing FB_PAGE_ID or FB_ACCESS_TOKEN")

// Config is built once at startup and never mutated afterwards.
type Config struct {
	App      App
	Facebook Facebook
}

type App struct {
	Port                 int
	Debug                bool
	APIKey               string
	CORSAllowedOrigins   []string
	AnalyticsConcurrency int
}

type Facebook struct {
	PageID            string
	AccessToken       string
	APIVersion        string
	GraphBaseURL      string
	Timeout           time.Duration
	PhotoCommentLabel string
}

// AuthEnabled reports whether the X-API-Key gate is active.
func (c *Config) AuthEnabled() bool {
	return c.App.APIKey != ""
}

// Load reads configuration from the environment, optionally seeded by .env
// files. Values already present in the environment always win.
func Load(envFiles ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		v.SetConfigFile(name)
		v.SetConfigType("env")
		if err := v.MergeInConfig(); err != nil {
			logger.GetLogger().WithField("error", err).WithField("file", name).Error("Error reading env file")
			continue
		}
		logger.GetLogger().WithField("file", name).Info("Detected env file in working directory")
	}
	v.AutomaticEnv()

	cfg := &Config{
		App: App{
			Port:                 v.GetInt("PORT"),
			Debug:                strings.EqualFold(v.GetString("DEBUG"), "true"),
			APIKey:               v.GetString("API_KEY"),
			CORSAllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			AnalyticsConcurrency: v.GetInt("ANALYTICS_CONCURRENCY"),
		},
		Facebook: Facebook{
			PageID:            v.GetString("FB_PAGE_ID"),
			AccessToken:       v.GetString("FB_ACCESS_TOKEN"),
			APIVersion:        v.GetString("FB_API_VERSION"),
			GraphBaseURL:      strings.TrimRight(v.GetString("FB_GRAPH_BASE_URL"), "/"),
			Timeout:           v.GetDuration("UPSTREAM_TIMEOUT"),
			PhotoCommentLabel: v.GetString("PHOTO_COMMENT_LABEL"),
		},
	}

	if cfg.Facebook.PageID == "" || cfg.Facebook.AccessToken == "" {
		return nil, ErrMissingCredentials
	}
	if cfg.App.Port == 0 {
		cfg.App.Port = DefaultPort
	}
	if cfg.App.AnalyticsConcurrency < 1 {
		cfg.App.AnalyticsConcurrency = 1
	}
	if len(cfg.App.CORSAllowedOrigins) == 0 {
		cfg.App.CORSAllowedOrigins = []string{"*"}
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("FB_PAGE_ID", "")
	v.SetDefault("FB_ACCESS_TOKEN", "")
	v.SetDefault("FB_API_VERSION", DefaultAPIVersion)
	v.SetDefault("FB_GRAPH_BASE_URL", DefaultGraphBaseURL)
	v.SetDefault("API_KEY", "")
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("DEBUG", "false")
	v.SetDefault("UPSTREAM_TIMEOUT", "0s")
	v.SetDefault("ANALYTICS_CONCURRENCY", 1)
	v.SetDefault("PHOTO_COMMENT_LABEL", DefaultPhotoCommentLabel)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
