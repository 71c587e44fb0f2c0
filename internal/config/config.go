package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

const (
	defaultPort      = "8080"
	defaultFeedUser  = "MeatyMahir"
	defaultProxyURL  = "https://api.allorigins.win/raw?url="
	defaultImagesDir = "./images"

	// noProxy disables the CORS relay and fetches the feed directly.
	noProxy = "none"
)

type Config struct {
	Port      string
	ImagesDir string

	FeedUser    string
	FeedURL     string
	ProxyURL    string
	FeedTimeout time.Duration
	FeedLimit   int
	FeedRate    float64
	FeedBurst   int
}

// Load reads the configuration from the environment. Values from a .env file
// in the working directory are already applied by the autoload import.
func Load() (Config, error) {
	cfg := Config{
		Port:      getenv("PORT", defaultPort),
		ImagesDir: getenv("IMAGES_DIR", defaultImagesDir),
		FeedUser:  getenv("LETTERBOXD_USER", defaultFeedUser),
		ProxyURL:  getenv("FEED_PROXY_URL", defaultProxyURL),
	}
	if strings.EqualFold(cfg.ProxyURL, noProxy) {
		cfg.ProxyURL = ""
	}
	cfg.FeedURL = getenv("FEED_URL", "https://letterboxd.com/"+cfg.FeedUser+"/rss/")

	var err error
	if cfg.FeedTimeout, err = durationEnv("FEED_TIMEOUT", 10*time.Second); err != nil {
		return cfg, err
	}
	if cfg.FeedLimit, err = intEnv("FEED_LIMIT", 5); err != nil {
		return cfg, err
	}
	if cfg.FeedBurst, err = intEnv("FEED_BURST", 3); err != nil {
		return cfg, err
	}
	if cfg.FeedRate, err = floatEnv("FEED_RATE", 1); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ProfileURL is the public Letterboxd page linked under the feed grid.
func (c Config) ProfileURL() string {
	return "https://letterboxd.com/" + c.FeedUser + "/"
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := getenv(key, "")
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", key, raw)
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	raw := getenv(key, "")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %d", key, n)
	}
	return n, nil
}

func floatEnv(key string, def float64) (float64, error) {
	raw := getenv(key, "")
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if f <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", key, raw)
	}
	return f, nil
}
