package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomdyson/toktab-cli/internal/i18n"
)

func TestIsUpdateAvailable(t *testing.T) {
	trans, _ := i18n.NewTranslations("en", t.TempDir())

	tests := []struct {
		name     string
		current  string
		latest   string
		expected bool
	}{
		{
			name:     "patch update available",
			current:  "v0.3.0",
			latest:   "v0.3.1",
			expected: true,
		},
		{
			name:     "minor update available",
			current:  "v0.3.0",
			latest:   "v0.4.0",
			expected: true,
		},
		{
			name:     "major update available",
			current:  "v0.3.0",
			latest:   "v1.0.0",
			expected: true,
		},
		{
			name:     "no update available - same version",
			current:  "v0.3.0",
			latest:   "v0.3.0",
			expected: false,
		},
		{
			name:     "no update - current is newer",
			current:  "v0.4.0",
			latest:   "v0.3.9",
			expected: false,
		},
		{
			name:     "without v prefix in current",
			current:  "0.3.0",
			latest:   "v0.3.1",
			expected: true,
		},
		{
			name:     "invalid versions fall back to inequality",
			current:  "dev",
			latest:   "v0.3.0",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewVersionChecker(tt.current, trans)
			assert.Equal(t, tt.expected, checker.isUpdateAvailable(tt.latest))
		})
	}
}

func TestUpdateCacheRoundTrip(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	trans, err := i18n.NewTranslations("en", t.TempDir())
	require.NoError(t, err)

	checker := NewVersionChecker("v0.3.0", trans)

	saved := UpdateCache{
		LastCheck:   time.Now().Truncate(time.Second),
		LatestKnown: "v0.4.0",
	}
	require.NoError(t, checker.saveCache(saved))

	if _, err := os.Stat(filepath.Join(tmpHome, ".toktab", "last_update_check.json")); err != nil {
		t.Fatalf("expected cache file to exist: %v", err)
	}

	loaded, err := checker.loadCache()
	require.NoError(t, err)
	assert.Equal(t, "v0.4.0", loaded.LatestKnown)
	assert.WithinDuration(t, saved.LastCheck, loaded.LastCheck, time.Second)
}

func TestCheckForUpdates_Disabled(t *testing.T) {
	t.Setenv("TOKTAB_DISABLE_UPDATE_CHECK", "1")
	t.Setenv("HOME", t.TempDir())

	trans, err := i18n.NewTranslations("en", t.TempDir())
	require.NoError(t, err)

	checker := NewVersionChecker("v0.3.0", trans)

	// Must return without touching the cache dir
	checker.CheckForUpdates(context.Background())

	_, statErr := os.Stat(filepath.Join(os.Getenv("HOME"), ".toktab"))
	assert.True(t, os.IsNotExist(statErr))
}
