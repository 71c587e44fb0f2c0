package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"PORT", "IMAGES_DIR", "LETTERBOXD_USER", "FEED_URL", "FEED_PROXY_URL",
	"FEED_TIMEOUT", "FEED_LIMIT", "FEED_RATE", "FEED_BURST",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./images", cfg.ImagesDir)
	assert.Equal(t, "MeatyMahir", cfg.FeedUser)
	assert.Equal(t, "https://letterboxd.com/MeatyMahir/rss/", cfg.FeedURL)
	assert.Equal(t, "https://api.allorigins.win/raw?url=", cfg.ProxyURL)
	assert.Equal(t, 10*time.Second, cfg.FeedTimeout)
	assert.Equal(t, 5, cfg.FeedLimit)
	assert.Equal(t, 1.0, cfg.FeedRate)
	assert.Equal(t, 3, cfg.FeedBurst)
	assert.Equal(t, "https://letterboxd.com/MeatyMahir/", cfg.ProfileURL())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LETTERBOXD_USER", "someone")
	t.Setenv("FEED_PROXY_URL", "NONE")
	t.Setenv("FEED_TIMEOUT", "2500ms")
	t.Setenv("FEED_LIMIT", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://letterboxd.com/someone/rss/", cfg.FeedURL)
	assert.Empty(t, cfg.ProxyURL)
	assert.Equal(t, 2500*time.Millisecond, cfg.FeedTimeout)
	assert.Equal(t, 8, cfg.FeedLimit)
}

func TestLoad_FeedURLWinsOverUser(t *testing.T) {
	clearEnv(t)
	t.Setenv("LETTERBOXD_USER", "someone")
	t.Setenv("FEED_URL", "http://localhost:9000/rss")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/rss", cfg.FeedURL)
	assert.Equal(t, "https://letterboxd.com/someone/", cfg.ProfileURL())
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"FEED_TIMEOUT": "soon",
		"FEED_LIMIT":   "0",
		"FEED_BURST":   "-1",
		"FEED_RATE":    "fast",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}
