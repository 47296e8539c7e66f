package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"shipment-photo-dashboard/internal/apperr"
)

// Config stores service settings.
type Config struct {
	Port      int
	Baserow   Baserow
	Upload    Upload
	HTTP      HTTP
	DB        DB
	Kafka     Kafka
	RateLimit RateLimit
	Pprof     PprofConfig
}

// Baserow stores upstream table service settings.
type Baserow struct {
	Token   string
	BaseURL string
	TableID string
}

// Upload stores upload proxy limits.
type Upload struct {
	MaxFileSize int64
}

// HTTP stores HTTP server settings.
type HTTP struct {
	WriteTimeout time.Duration
}

// DB stores the orphan ledger connection. An empty DSN disables the ledger.
type DB struct {
	DSN string
}

// Enabled reports whether the ledger is configured.
func (d DB) Enabled() bool { return d.DSN != "" }

// Kafka stores event publishing settings. No brokers disables publishing.
type Kafka struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether publishing is configured.
func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 && k.Topic != "" }

// RateLimit stores upload rate limiting settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// PprofConfig stores pprof server settings.
type PprofConfig struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Load reads configuration in order: .env (if present) → environment → flags.
// Missing upstream settings are reported as *apperr.ConfigError.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      defaultPort,
		Upload:    defaultUpload,
		HTTP:      defaultHTTP,
		RateLimit: defaultRateLimit,
		Pprof:     defaultPprof,
	}

	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return nil, err
	}
	if cfg.Upload.MaxFileSize, err = envInt64("UPLOAD_MAX_FILE_SIZE", cfg.Upload.MaxFileSize); err != nil {
		return nil, err
	}
	if cfg.HTTP.WriteTimeout, err = envDuration("HTTP_WRITE_TIMEOUT", cfg.HTTP.WriteTimeout); err != nil {
		return nil, err
	}
	if err := loadRateLimit(&cfg.RateLimit); err != nil {
		return nil, err
	}
	if err := loadPprof(&cfg.Pprof); err != nil {
		return nil, err
	}
	cfg.DB.DSN = strings.TrimSpace(os.Getenv("POSTGRES_DSN"))
	cfg.Kafka = loadKafka()

	fs := pflag.CommandLine
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Upload.MaxFileSize <= 0 {
		return nil, fmt.Errorf("invalid UPLOAD_MAX_FILE_SIZE: %d", cfg.Upload.MaxFileSize)
	}

	if cfg.Baserow, err = loadBaserow(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadBaserow() (Baserow, error) {
	b := Baserow{
		Token:   os.Getenv("BASEROW_API_TOKEN"),
		BaseURL: os.Getenv("BASEROW_BASE_URL"),
		TableID: os.Getenv("BASEROW_TABLE_ID"),
	}
	if b.Token == "" {
		return Baserow{}, &apperr.ConfigError{Var: "BASEROW_API_TOKEN"}
	}
	if b.BaseURL == "" {
		return Baserow{}, &apperr.ConfigError{Var: "BASEROW_BASE_URL"}
	}
	if b.TableID == "" {
		return Baserow{}, &apperr.ConfigError{Var: "BASEROW_TABLE_ID"}
	}
	b.BaseURL = strings.TrimSuffix(b.BaseURL, "/")
	return b, nil
}

func loadRateLimit(rl *RateLimit) error {
	var err error
	if rl.Enabled, err = envBool("RATE_LIMIT_ENABLED", rl.Enabled); err != nil {
		return err
	}
	if v := os.Getenv("RATE_LIMIT_RATE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("invalid RATE_LIMIT_RATE: %q", v)
		}
		rl.Rate = f
	}
	if rl.Burst, err = envInt("RATE_LIMIT_BURST", rl.Burst); err != nil {
		return err
	}
	if rl.TTL, err = envDuration("RATE_LIMIT_TTL", rl.TTL); err != nil {
		return err
	}
	if rl.MaxBuckets, err = envInt("RATE_LIMIT_MAX_BUCKETS", rl.MaxBuckets); err != nil {
		return err
	}
	return nil
}

func loadPprof(p *PprofConfig) error {
	var err error
	if p.Enabled, err = envBool("PPROF_ENABLED", p.Enabled); err != nil {
		return err
	}
	if v := os.Getenv("PPROF_ADDR"); v != "" {
		p.Addr = v
	}
	p.User = os.Getenv("PPROF_USER")
	p.Pass = os.Getenv("PPROF_PASS")
	return nil
}

func loadKafka() Kafka {
	k := Kafka{Topic: defaultKafkaPhotoTopic}
	for _, b := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			k.Brokers = append(k.Brokers, b)
		}
	}
	if v := strings.TrimSpace(os.Getenv("KAFKA_PHOTO_TOPIC")); v != "" {
		k.Topic = v
	}
	return k
}

func envInt(name string, def int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, v)
	}
	return n, nil
}

func envInt64(name string, def int64) (int64, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, v)
	}
	return n, nil
}

func envBool(name string, def bool) (bool, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %q", name, v)
	}
	return b, nil
}

func envDuration(name string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, v)
	}
	return d, nil
}
