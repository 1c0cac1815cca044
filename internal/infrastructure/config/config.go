package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel  string
	LogFormat string

	// Empty DatabaseURL means the built-in room catalog is used.
	DatabaseURL string
	// Empty RedisAddr means room locks are process-local.
	RedisAddr string
	// Empty AMQPURL disables reservation.confirmed events.
	AMQPURL string

	VoucherHashKey  []byte // base64
	VoucherBlockKey []byte // base64

	CardLimitCents int64
}

func (c Config) VouchersEnabled() bool { return len(c.VoucherHashKey) > 0 }

// Load reads a .env file when present and then the environment.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		LogLevel:    envDefault("LOG_LEVEL", "info"),
		LogFormat:   envDefault("LOG_FORMAT", "console"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisAddr:   strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		AMQPURL:     strings.TrimSpace(os.Getenv("AMQP_URL")),
	}
	switch cfg.LogFormat {
	case "json", "console":
	default:
		return cfg, fmt.Errorf("LOG_FORMAT must be json or console (got %q)", cfg.LogFormat)
	}

	limit := envDefault("CARD_LIMIT_CENTS", "0")
	n, err := strconv.ParseInt(limit, 10, 64)
	if err != nil || n < 0 {
		return cfg, fmt.Errorf("invalid CARD_LIMIT_CENTS %q", limit)
	}
	cfg.CardLimitCents = n

	cfg.VoucherHashKey, err = optionalB64("VOUCHER_HASH_KEY")
	if err != nil {
		return cfg, err
	}
	cfg.VoucherBlockKey, err = optionalB64("VOUCHER_BLOCK_KEY")
	if err != nil {
		return cfg, err
	}
	if (cfg.VoucherHashKey == nil) != (cfg.VoucherBlockKey == nil) {
		return cfg, fmt.Errorf("VOUCHER_HASH_KEY and VOUCHER_BLOCK_KEY must be set together")
	}
	if cfg.VoucherBlockKey != nil {
		switch len(cfg.VoucherBlockKey) {
		case 16, 24, 32:
		default:
			return cfg, fmt.Errorf("VOUCHER_BLOCK_KEY must decode to 16, 24 or 32 bytes (got %d)", len(cfg.VoucherBlockKey))
		}
	}
	return cfg, nil
}

func envDefault(k, d string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	return v
}

func optionalB64(k string) ([]byte, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return nil, nil
	}
	if b, err := base64.StdEncoding.DecodeString(v); err == nil {
		return b, nil
	}
	b, err := base64.RawStdEncoding.DecodeString(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", k, err)
	}
	return b, nil
}
