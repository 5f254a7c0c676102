// Package selfupdate checks GitHub releases for a newer attest build.
package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// ErrDevBuild marks a version string that cannot be compared to releases.
var ErrDevBuild = fmt.Errorf("cannot check a development build")

const defaultReleaseURL = "https://api.github.com/repos/fssp-tools/attest/releases/latest"

// Checker queries the release feed.
type Checker struct {
	client     *http.Client
	releaseURL string
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout sets the HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// WithReleaseURL overrides the release feed URL.
func WithReleaseURL(url string) Option {
	return func(c *Checker) { c.releaseURL = url }
}

// NewChecker creates a Checker with a 10s default timeout.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		client:     &http.Client{Timeout: 10 * time.Second},
		releaseURL: defaultReleaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckResult describes the outcome of a version check.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
}

// Check compares the running version against the latest release tag.
func (c *Checker) Check(ctx context.Context, currentVersion string) (*CheckResult, error) {
	if currentVersion == "" || currentVersion == "(devel)" {
		return nil, ErrDevBuild
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.releaseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("release feed returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read release feed: %w", err)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("decode release feed: %w", err)
	}
	if release.TagName == "" {
		return nil, fmt.Errorf("release feed carried no tag")
	}

	current := normalize(currentVersion)
	latest := normalize(release.TagName)
	if !semver.IsValid(current) {
		return nil, fmt.Errorf("current version %q is not semver", currentVersion)
	}
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("release tag %q is not semver", release.TagName)
	}

	return &CheckResult{
		CurrentVersion:  current,
		LatestVersion:   latest,
		UpdateAvailable: semver.Compare(latest, current) > 0,
	}, nil
}

func normalize(v string) string {
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
