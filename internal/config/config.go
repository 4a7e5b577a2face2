package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultBaseURL  = "https://api.wikimedia.org/feed/v1/wikipedia"
	defaultLanguage = "en"
)

const (
	defaultUserAgent  = "onthisday/0.1.0 (historical events lookup CLI)"
	configFolderName  = "onthisday"
	configFileName    = "config.toml"
	configPathEnvName = "XDG_CONFIG_HOME"
)

type Config struct {
	BaseURL   string
	Language  string
	UserAgent string
	// HTTPTimeout zero means no client timeout beyond transport defaults.
	HTTPTimeout time.Duration
}

func LoadConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BaseURL:     defaultBaseURL,
		Language:    defaultLanguage,
		UserAgent:   defaultUserAgent,
		HTTPTimeout: 0,
	}

	configPath, hasConfig, err := findConfigPath(home)
	if err != nil {
		return Config{}, err
	}
	if hasConfig {
		fileCfg, err := loadFileConfig(configPath)
		if err != nil {
			return Config{}, err
		}
		applyFileConfig(&cfg, fileCfg)
	}

	applyEnvOverrides(&cfg)

	return cfg, nil
}

type fileConfig struct {
	BaseURL            *string `toml:"base_url"`
	Language           *string `toml:"language"`
	UserAgent          *string `toml:"user_agent"`
	HTTPTimeoutSeconds *int    `toml:"http_timeout_seconds"`
}

func findConfigPath(home string) (string, bool, error) {
	candidates := make([]string, 0, 2)
	if xdgConfigHome := strings.TrimSpace(os.Getenv(configPathEnvName)); xdgConfigHome != "" {
		candidates = append(candidates, filepath.Join(xdgConfigHome, configFolderName, configFileName))
	}
	candidates = append(candidates, filepath.Join(home, ".config", configFolderName, configFileName))

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", false, fmt.Errorf("config path %q is a directory; expected a file", candidate)
			}
			return candidate, true, nil
		}
		if os.IsNotExist(err) {
			continue
		}
		return "", false, fmt.Errorf("failed to read config path %q: %w", candidate, err)
	}
	return "", false, nil
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		unknown := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			unknown = append(unknown, key.String())
		}
		sort.Strings(unknown)
		return fileConfig{}, fmt.Errorf("invalid config file %q: unknown key(s): %s", path, strings.Join(unknown, ", "))
	}
	if err := validateFileConfig(path, cfg); err != nil {
		return fileConfig{}, err
	}
	return cfg, nil
}

func validateFileConfig(path string, cfg fileConfig) error {
	if cfg.BaseURL != nil && strings.TrimSpace(*cfg.BaseURL) == "" {
		return fmt.Errorf("invalid config file %q: base_url must be non-empty when provided", path)
	}
	if cfg.Language != nil && strings.TrimSpace(*cfg.Language) == "" {
		return fmt.Errorf("invalid config file %q: language must be non-empty when provided", path)
	}
	if cfg.UserAgent != nil && strings.TrimSpace(*cfg.UserAgent) == "" {
		return fmt.Errorf("invalid config file %q: user_agent must be non-empty when provided", path)
	}
	if cfg.HTTPTimeoutSeconds != nil && *cfg.HTTPTimeoutSeconds < 0 {
		return fmt.Errorf("invalid config file %q: http_timeout_seconds must be >= 0", path)
	}
	return nil
}

func applyFileConfig(cfg *Config, fileCfg fileConfig) {
	if fileCfg.BaseURL != nil {
		cfg.BaseURL = *fileCfg.BaseURL
	}
	if fileCfg.Language != nil {
		cfg.Language = *fileCfg.Language
	}
	if fileCfg.UserAgent != nil {
		cfg.UserAgent = *fileCfg.UserAgent
	}
	if fileCfg.HTTPTimeoutSeconds != nil {
		cfg.HTTPTimeout = time.Duration(*fileCfg.HTTPTimeoutSeconds) * time.Second
	}
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("ONTHISDAY_BASE_URL"); ok && strings.TrimSpace(v) != "" {
		cfg.BaseURL = v
	}
	if v, ok := os.LookupEnv("ONTHISDAY_LANGUAGE"); ok && strings.TrimSpace(v) != "" {
		cfg.Language = v
	}
	if v, ok := os.LookupEnv("ONTHISDAY_USER_AGENT"); ok && strings.TrimSpace(v) != "" {
		cfg.UserAgent = v
	}
	if v, ok := os.LookupEnv("ONTHISDAY_HTTP_TIMEOUT_SECONDS"); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.HTTPTimeout = time.Duration(n) * time.Second
		}
	}
}
