package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/go-github/v68/github"
	"github.com/tomdyson/toktab-cli/internal/i18n"
	"golang.org/x/mod/semver"
)

const (
	repoOwner = "tomdyson"
	repoName  = "toktab-cli"
)

// VersionChecker notifies about newer releases. The result is cached for a
// day so the CLI only hits GitHub once per day.
type VersionChecker struct {
	currentVersion string
	trans          *i18n.Translations
}

type UpdateCache struct {
	LastCheck   time.Time `json:"last_check"`
	LatestKnown string    `json:"latest_known"`
}

func NewVersionChecker(version string, trans *i18n.Translations) *VersionChecker {
	return &VersionChecker{
		currentVersion: version,
		trans:          trans,
	}
}

func (v *VersionChecker) CheckForUpdates(ctx context.Context) {
	if os.Getenv("TOKTAB_DISABLE_UPDATE_CHECK") != "" {
		return
	}

	cache, err := v.loadCache()
	if err == nil && time.Since(cache.LastCheck) < 24*time.Hour {
		if cache.LatestKnown != "" && v.isUpdateAvailable(cache.LatestKnown) {
			v.printUpdateNotification(cache.LatestKnown)
		}
		return
	}

	client := github.NewClient(nil)
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	release, _, err := client.Repositories.GetLatestRelease(ctx, repoOwner, repoName)
	if err != nil {
		return
	}

	latestVersion := release.GetTagName()

	_ = v.saveCache(UpdateCache{
		LastCheck:   time.Now(),
		LatestKnown: latestVersion,
	})

	if v.isUpdateAvailable(latestVersion) {
		v.printUpdateNotification(latestVersion)
	}
}

func (v *VersionChecker) isUpdateAvailable(latest string) bool {
	current := v.currentVersion
	if !strings.HasPrefix(current, "v") {
		current = "v" + current
	}
	if !strings.HasPrefix(latest, "v") {
		latest = "v" + latest
	}

	if !semver.IsValid(current) || !semver.IsValid(latest) {
		return current != latest
	}

	return semver.Compare(latest, current) > 0
}

func (v *VersionChecker) printUpdateNotification(latest string) {
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()

	msgAvailable := v.trans.GetMessage("update.available", 0, map[string]interface{}{
		"Current": v.currentVersion,
		"Latest":  green(latest),
	})
	msgCommand := v.trans.GetMessage("update.command", 0, map[string]interface{}{
		"Command": green(fmt.Sprintf("go install github.com/%s/%s@latest", repoOwner, repoName)),
	})

	fmt.Printf("\n%s\n", yellow(v.trans.GetMessage("update.box_top", 0, nil)))
	fmt.Printf("%s %s\n", yellow("│"), msgAvailable)
	fmt.Printf("%s %s\n", yellow("│"), msgCommand)
	fmt.Printf("%s\n\n", yellow(v.trans.GetMessage("update.box_bottom", 0, nil)))
}

func (v *VersionChecker) getCacheDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	cacheDir := filepath.Join(homeDir, ".toktab")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", err
	}
	return cacheDir, nil
}

func (v *VersionChecker) loadCache() (UpdateCache, error) {
	cacheDir, err := v.getCacheDir()
	if err != nil {
		return UpdateCache{}, err
	}

	cachePath := filepath.Join(cacheDir, "last_update_check.json")
	data, err := os.ReadFile(cachePath)
	if err != nil {
		return UpdateCache{}, err
	}

	var cache UpdateCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return UpdateCache{}, err
	}

	return cache, nil
}

func (v *VersionChecker) saveCache(cache UpdateCache) error {
	cacheDir, err := v.getCacheDir()
	if err != nil {
		return err
	}

	cachePath := filepath.Join(cacheDir, "last_update_check.json")
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(cachePath, data, 0644)
}
