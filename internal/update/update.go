// Package update looks for newer dyctl releases.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dyapi/dyctl/internal/build"
	dyhttp "github.com/dyapi/dyctl/internal/http"
	"golang.org/x/mod/semver"
)

// EnvDisable turns the check off when set to any value.
const EnvDisable = "DYCTL_NO_UPDATE_CHECK"

var ErrDevVersion = errors.New("dev version not supported")

// ReleasesURL is the github endpoint returning the latest dyctl release.
const ReleasesURL = "https://api.github.com/repos/dyapi/dyctl/releases/latest"

// Release is a published dyctl release.
type Release struct {
	Version string `json:"tag_name"`
	URL     string `json:"html_url"`
}

// Check returns the latest release when it is newer than version, nil otherwise.
// Will return ErrDevVersion if version is "dev".
func Check(ctx context.Context, doer dyhttp.HTTPDoer, version string) (*Release, error) {
	if version == "dev" {
		return nil, ErrDevVersion
	}

	latest, err := latest(ctx, doer)
	if err != nil {
		return nil, err
	}

	if semver.Compare(version, latest.Version) < 0 {
		return latest, nil
	}
	return nil, nil
}

func latest(ctx context.Context, doer dyhttp.HTTPDoer) (*Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ReleasesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", build.UserAgent())

	res, err := doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to do request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to do request, status code: %d", res.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(res.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("unable to decode response: %w", err)
	}
	if !semver.IsValid(release.Version) {
		return nil, fmt.Errorf("invalid semver tag: %s", release.Version)
	}
	return &release, nil
}
