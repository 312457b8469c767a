package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ConfigPathEnv names the TOML file used when Load is called without a path.
const ConfigPathEnv = "MEDIAHUB_CONFIG"

const minSecretLength = 16

type Config struct {
	Port                 int      `toml:"port"`
	PublicBaseURL        string   `toml:"public_base_url"`
	JWTSecret            string   `toml:"jwt_secret"`
	TokenTTLHours        int      `toml:"token_ttl_hours"`
	DataDir              string   `toml:"data_dir"`
	MaxVideoUploadMB     int      `toml:"max_video_upload_mb"`
	MaxImageUploadMB     int      `toml:"max_image_upload_mb"`
	Workers              int      `toml:"workers"`
	MaxConcurrentEncodes int      `toml:"max_concurrent_encodes"`
	FFmpegPath           string   `toml:"ffmpeg_path"`
	FFprobePath          string   `toml:"ffprobe_path"`
	AllowedOrigins       []string `toml:"allowed_origins"`
	MetricsEnabled       bool     `toml:"metrics_enabled"`
	BehindProxy          bool     `toml:"behind_proxy"`
}

func Default() *Config {
	return &Config{
		Port:                 7890,
		TokenTTLHours:        24 * 30,
		DataDir:              "/data",
		MaxVideoUploadMB:     2000,
		MaxImageUploadMB:     5,
		Workers:              2,
		MaxConcurrentEncodes: 4,
		FFmpegPath:           "ffmpeg",
		FFprobePath:          "ffprobe",
		MetricsEnabled:       true,
	}
}

// Load builds the configuration from defaults, then the TOML file at path
// (or $MEDIAHUB_CONFIG), then environment variables.
func Load(path string) (*Config, error) {
	cfg, err := read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadIngest is Load for commands that only run the encoder. The server
// settings (secret, port, data directory, upload limits) are read but not
// checked.
func LoadIngest(path string) (*Config, error) {
	cfg, err := read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateIngest(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func read(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{"PORT", &c.Port},
		{"TOKEN_TTL_HOURS", &c.TokenTTLHours},
		{"MAX_VIDEO_UPLOAD_MB", &c.MaxVideoUploadMB},
		{"MAX_IMAGE_UPLOAD_MB", &c.MaxImageUploadMB},
		{"WORKERS", &c.Workers},
		{"MAX_CONCURRENT_ENCODES", &c.MaxConcurrentEncodes},
	}
	for _, v := range ints {
		raw := os.Getenv(v.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", v.key, err)
		}
		*v.dst = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"METRICS_ENABLED", &c.MetricsEnabled},
		{"BEHIND_PROXY", &c.BehindProxy},
	}
	for _, v := range bools {
		raw := os.Getenv(v.key)
		if raw == "" {
			continue
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", v.key, err)
		}
		*v.dst = b
	}

	c.PublicBaseURL = getEnv("PUBLIC_BASE_URL", c.PublicBaseURL)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.DataDir = getEnv("DATA_DIR", c.DataDir)
	c.FFmpegPath = getEnv("FFMPEG_PATH", c.FFmpegPath)
	c.FFprobePath = getEnv("FFPROBE_PATH", c.FFprobePath)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		c.AllowedOrigins = splitList(origins)
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	return nil
}

func (c *Config) Validate() error {
	var errs []error
	if len(c.JWTSecret) < minSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d characters", minSecretLength))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d", c.Port))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New("data directory is required"))
	}
	positive := []struct {
		name  string
		value int
	}{
		{"token ttl hours", c.TokenTTLHours},
		{"max video upload size", c.MaxVideoUploadMB},
		{"max image upload size", c.MaxImageUploadMB},
		{"workers", c.Workers},
		{"max concurrent encodes", c.MaxConcurrentEncodes},
	}
	for _, p := range positive {
		if p.value < 1 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", p.name, p.value))
		}
	}
	return errors.Join(errs...)
}

func (c *Config) ValidateIngest() error {
	var errs []error
	if c.MaxConcurrentEncodes < 1 {
		errs = append(errs, fmt.Errorf("max concurrent encodes must be positive, got %d", c.MaxConcurrentEncodes))
	}
	if strings.TrimSpace(c.FFmpegPath) == "" {
		errs = append(errs, errors.New("ffmpeg path is required"))
	}
	if strings.TrimSpace(c.FFprobePath) == "" {
		errs = append(errs, errors.New("ffprobe path is required"))
	}
	return errors.Join(errs...)
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

func (c *Config) MaxVideoUploadBytes() int64 {
	return int64(c.MaxVideoUploadMB) << 20
}

func (c *Config) MaxImageUploadBytes() int64 {
	return int64(c.MaxImageUploadMB) << 20
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
