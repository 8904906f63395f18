// Package update checks GitHub releases for a newer shell version. It only
// notifies; installation stays with the user.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/cometbrowser/comet/internal/shell/common/log"
)

const (
	defaultBaseURL = "https://api.github.com"
	requestTimeout = 15 * time.Second
	userAgent      = "comet-browser"
)

// release mirrors the GitHub releases API payload.
type release struct {
	TagName    string  `json:"tag_name"`
	Name       string  `json:"name"`
	Body       string  `json:"body"`
	HTMLURL    string  `json:"html_url"`
	Assets     []asset `json:"assets"`
	Prerelease bool    `json:"prerelease"`
	Draft      bool    `json:"draft"`
}

type asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               uint64 `json:"size"`
	ContentType        string `json:"content_type"`
}

// Info describes an available update.
type Info struct {
	Version      string
	ReleaseURL   string
	ReleaseNotes string
	DownloadURL  string
	PackageSize  uint64
}

// Checker polls GitHub releases and compares versions semantically.
type Checker struct {
	current         string
	repo            string
	checkPrerelease bool
	baseURL         string
	client          *http.Client
	logger          log.Logger
}

// Options configures a Checker. Repo is "owner/name"; Current is the running
// semantic version.
type Options struct {
	Current         string
	Repo            string
	CheckPrerelease bool
	BaseURL         string // overridden in tests; empty selects the GitHub API
	Logger          log.Logger
}

// NewChecker constructs an update checker.
func NewChecker(opts Options) *Checker {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	return &Checker{
		current:         opts.Current,
		repo:            opts.Repo,
		checkPrerelease: opts.CheckPrerelease,
		baseURL:         opts.BaseURL,
		client:          &http.Client{Timeout: requestTimeout},
		logger:          opts.Logger,
	}
}

// Check queries the latest release. It returns nil when no newer version is
// available (including drafts and skipped prereleases).
func (c *Checker) Check(ctx context.Context) (*Info, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", c.baseURL, c.repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decoding release: %w", err)
	}

	if rel.Draft || (rel.Prerelease && !c.checkPrerelease) {
		return nil, nil
	}

	remote := strings.TrimPrefix(rel.TagName, "v")
	if !c.isNewer(remote) {
		return nil, nil
	}

	info := &Info{
		Version:      remote,
		ReleaseURL:   rel.HTMLURL,
		ReleaseNotes: rel.Body,
	}
	if a := pickAsset(rel.Assets); a != nil {
		info.DownloadURL = a.BrowserDownloadURL
		info.PackageSize = a.Size
	}
	return info, nil
}

// isNewer compares remote against the running version. Unparseable running
// versions (dev builds) treat any parseable remote as newer.
func (c *Checker) isNewer(remote string) bool {
	rv, err := semver.NewVersion(remote)
	if err != nil {
		return false
	}
	cv, err := semver.NewVersion(c.current)
	if err != nil {
		return true
	}
	return rv.GreaterThan(cv)
}

// packagePreference returns asset extensions in preference order for this
// system, detected from the installed package manager.
func packagePreference() []string {
	if _, err := os.Stat("/usr/bin/dpkg"); err == nil {
		return []string{".deb"}
	}
	if _, err := os.Stat("/usr/bin/rpm"); err == nil {
		return []string{".rpm"}
	}
	return []string{".flatpak", ".AppImage", ".tar.gz"}
}

// pickAsset finds the first asset matching the system's package preference.
func pickAsset(assets []asset) *asset {
	for _, ext := range packagePreference() {
		for i := range assets {
			if strings.HasSuffix(assets[i].Name, ext) {
				return &assets[i]
			}
		}
	}
	return nil
}

// Run checks on the given interval until ctx is cancelled, invoking notify
// for each available update. Failures are logged and the loop continues.
func (c *Checker) Run(ctx context.Context, interval time.Duration, notify func(Info)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			info, err := c.Check(ctx)
			switch {
			case err != nil:
				c.logger.Warn(map[string]any{"error": err.Error()}, "update check failed")
			case info != nil:
				c.logger.Info(map[string]any{"version": info.Version}, "update available")
				notify(*info)
			default:
				c.logger.Debug(nil, "no updates available")
			}
		}
	}
}
