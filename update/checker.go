package update

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// GitHubRepository is the <owner>/<name> slug releases are published under.
const GitHubRepository = "Toufool/AutoSplit"

// ErrCheckInFlight is returned when a check is requested while a previous
// one has not completed yet.
var ErrCheckInFlight = errors.New("update check already in progress")

var tagVersionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`v([0-9]+\.[0-9]+\.[0-9]+\.[0-9]+)`),
	regexp.MustCompile(`v([0-9]+\.[0-9]+\.[0-9]+)`),
	regexp.MustCompile(`v([0-9]+\.[0-9]+)`),
}

// Checker looks up the latest released version in the background. A single
// Checker never runs two lookups concurrently.
type Checker struct {
	client     *http.Client
	apiBaseURL string
	webBaseURL string
	repository string
	inFlight   atomic.Bool
}

// NewChecker creates an update checker against the GitHub releases feed.
func NewChecker() *Checker {
	return &Checker{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiBaseURL: "https://api.github.com",
		webBaseURL: "https://github.com",
		repository: GitHubRepository,
	}
}

// ReleasesURL is the page the update dialog sends the user to.
func (c *Checker) ReleasesURL() string {
	return fmt.Sprintf("%s/%s/releases/latest", c.webBaseURL, c.repository)
}

// Result is the outcome of one background check, delivered on the channel
// returned by Check.
type Result struct {
	LatestVersion string
	Err           error
}

// Check fetches the latest release version off the caller's thread and
// delivers the outcome on the returned channel, which closes once the
// check completes. Failures during a startup check (checkOnOpen) are
// logged and the channel closes without a result. Returns ErrCheckInFlight
// when a previous check is still running.
func (c *Checker) Check(checkOnOpen bool) (<-chan Result, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return nil, ErrCheckInFlight
	}

	results := make(chan Result, 1)
	go func() {
		defer c.inFlight.Store(false)
		defer close(results)

		latest, err := c.fetchLatestVersion()
		if err != nil {
			log.Printf("Update check failed: %v", err)
			if checkOnOpen {
				return
			}
			results <- Result{Err: err}
			return
		}

		results <- Result{LatestVersion: latest}
	}()

	return results, nil
}

// fetchLatestVersion asks the releases API first and falls back to
// scraping the releases page when the API response is unusable.
func (c *Checker) fetchLatestVersion() (string, error) {
	version, apiErr := c.fetchFromAPI()
	if apiErr == nil {
		return version, nil
	}

	version, scrapeErr := c.scrapeReleasesPage()
	if scrapeErr != nil {
		return "", fmt.Errorf("releases API failed (%v), releases page failed: %w", apiErr, scrapeErr)
	}
	return version, nil
}

func (c *Checker) fetchFromAPI() (string, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", c.apiBaseURL, c.repository)

	resp, err := c.client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("releases API returned status %d", resp.StatusCode)
	}

	var release struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("failed to decode release: %w", err)
	}

	return versionFromReleaseName(release.Name)
}

// versionFromReleaseName strips the literal "v" marker off a release name
// like "AutoSplit v1.2.3" and returns the trailing version string.
func versionFromReleaseName(name string) (string, error) {
	_, version, found := strings.Cut(name, "v")
	if !found || strings.TrimSpace(version) == "" {
		return "", fmt.Errorf("release name %q carries no version tag", name)
	}
	return strings.TrimSpace(version), nil
}

// scrapeReleasesPage extracts the latest version from the releases page
// markup. GitHub redirects releases/latest to the tag page, whose title
// and headings carry the release name.
func (c *Checker) scrapeReleasesPage() (string, error) {
	resp, err := c.client.Get(c.ReleasesURL())
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("releases page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	var foundVersion string
	for _, selector := range []string{"title", "h1", "a[href*='/releases/tag/']"} {
		if foundVersion != "" {
			break
		}
		doc.Find(selector).Each(func(i int, s *goquery.Selection) {
			if foundVersion != "" {
				return
			}
			text := strings.TrimSpace(s.Text())
			for _, pattern := range tagVersionPatterns {
				matches := pattern.FindStringSubmatch(text)
				if len(matches) > 1 {
					foundVersion = matches[1]
					return
				}
			}
		})
	}

	if foundVersion == "" {
		return "", errors.New("no version tag found on releases page")
	}
	return foundVersion, nil
}
