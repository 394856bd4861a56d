package api

import (
	"fmt"
	"strings"
)

// Region selects the data center requests are sent to.
type Region string

const (
	RegionUS Region = "us"
	RegionEU Region = "eu"
)

var baseURLs = map[Region]string{
	RegionUS: "https://dy-api.com/v2",
	RegionEU: "https://dy-api.eu/v2",
}

// ParseRegion converts s into a Region. An empty string selects RegionUS.
func ParseRegion(s string) (Region, error) {
	r := Region(strings.ToLower(strings.TrimSpace(s)))
	if r == "" {
		return RegionUS, nil
	}
	if _, ok := baseURLs[r]; !ok {
		return "", fmt.Errorf("unknown region %q (supported: us, eu)", s)
	}
	return r, nil
}

// BaseURL returns the Experience API base URL of the region.
func (r Region) BaseURL() (string, error) {
	u, ok := baseURLs[r]
	if !ok {
		return "", fmt.Errorf("unknown region %q (supported: us, eu)", string(r))
	}
	return u, nil
}

// UnmarshalText implements encoding.TextUnmarshaler so a Region can be read from flags and env vars.
func (r *Region) UnmarshalText(text []byte) error {
	parsed, err := ParseRegion(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
