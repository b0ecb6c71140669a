package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Pricing struct {
	TaxRate          float64
	ShippingFlat     float64
	FreeShippingOver float64
}

type Storage struct {
	Path string
	Key  string
}

type Config struct {
	Storage Storage
	Pricing Pricing

	HistoryCap     int
	RenderDebounce time.Duration
	LogLevel       string
}

// Load reads .env if present and falls back to defaults for everything:
// this is a local app, no env is required.
func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{
		Storage: Storage{
			Path: strings.TrimSpace(os.Getenv("CART_STORAGE_PATH")),
			Key:  envDefault("CART_STORAGE_KEY", "artisanCart"),
		},
		Pricing: Pricing{
			TaxRate:          envFloat64("TAX_RATE", 0.08),
			ShippingFlat:     envFloat64("SHIPPING_FLAT", 15),
			FreeShippingOver: envFloat64("FREE_SHIPPING_OVER", 100),
		},
		HistoryCap:     envInt("HISTORY_CAP", 16),
		RenderDebounce: envDurationMS("RENDER_DEBOUNCE", 250*time.Millisecond),
		LogLevel:       envDefault("LOG_LEVEL", "info"),
	}

	cfg.sanitize()
	return cfg
}

// StorageFile resolves the JSON document path. A directory path gets the
// storage key as the filename stem, mirroring the local-storage key.
func (c Config) StorageFile() string {
	if c.Storage.Path == "" {
		return c.Storage.Key + ".json"
	}
	if fi, err := os.Stat(c.Storage.Path); err == nil && fi.IsDir() {
		return filepath.Join(c.Storage.Path, c.Storage.Key+".json")
	}
	return c.Storage.Path
}

func (c *Config) sanitize() {
	if c.Pricing.TaxRate < 0 || c.Pricing.TaxRate >= 1 {
		log.Printf("TAX_RATE %.3f out of range, using 0.08", c.Pricing.TaxRate)
		c.Pricing.TaxRate = 0.08
	}
	if c.Pricing.ShippingFlat < 0 {
		log.Printf("SHIPPING_FLAT %.2f is negative, using 15", c.Pricing.ShippingFlat)
		c.Pricing.ShippingFlat = 15
	}
	if c.Pricing.FreeShippingOver < 0 {
		log.Printf("FREE_SHIPPING_OVER %.2f is negative, using 100", c.Pricing.FreeShippingOver)
		c.Pricing.FreeShippingOver = 100
	}
	if c.HistoryCap <= 0 {
		log.Printf("HISTORY_CAP %d must be positive, using 16", c.HistoryCap)
		c.HistoryCap = 16
	}
	if c.RenderDebounce <= 0 {
		log.Printf("RENDER_DEBOUNCE %v must be positive, using 250ms", c.RenderDebounce)
		c.RenderDebounce = 250 * time.Millisecond
	}
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

func envFloat64(k string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %.3f: %v", k, v, def, err)
		return def
	}
	return f
}

// envDurationMS supports either plain integer milliseconds ("250") or
// Go duration strings ("1.5s", "250ms").
func envDurationMS(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
			return def
		}
		return d
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
