package app

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/studypass-backend/internal/platform/envutil"
	"github.com/yungbote/studypass-backend/internal/platform/logger"
)

type Config struct {
	ListenAddr   string   `yaml:"listen_addr"`
	AllowOrigins []string `yaml:"allow_origins"`

	SendgridFromName  string `yaml:"sendgrid_from_name"`
	SendgridFromEmail string `yaml:"sendgrid_from_email"`
}

// LoadConfig reads from the environment first; a CONFIG_FILE yaml
// overrides whatever it sets.
func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := Config{
		ListenAddr:        envutil.String("LISTEN_ADDR", ":8080"),
		AllowOrigins:      splitOrigins(envutil.String("ALLOW_ORIGINS", "http://localhost:3000")),
		SendgridFromName:  envutil.String("SENDGRID_FROM_NAME", "StudyPass"),
		SendgridFromEmail: envutil.String("SENDGRID_FROM_EMAIL", "no-reply@studypass.io"),
	}

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		return cfg, nil
	}

	log.Info("Loading config file...", "path", configFile)
	raw, err := os.ReadFile(configFile)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
