// Package build reports which dyctl binary is running.
package build

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"golang.org/x/mod/semver"
)

// Version of the binary, set with -ldflags "-X .../build.Version=v1.2.3" or read from the
// module build info when installed with "go install".
// It is "dev" for local builds, always "v"-prefixed semver otherwise, and "invalid (...)"
// when the given value is not semver.
var Version = "dev"

// Revision, Modified and ModificationTime come from the vcs settings of the build info.
var (
	Revision         string
	Modified         bool
	ModificationTime string
)

type buildInfoFunc func() (*debug.BuildInfo, bool)

// readBuildInfo is replaced in tests.
var readBuildInfo buildInfoFunc = debug.ReadBuildInfo

// setVersion fills Version and the vcs variables. Only init and tests call it.
func setVersion() {
	if Version == "dev" {
		if info, ok := readBuildInfo(); ok {
			if v := info.Main.Version; v != "" && v != "(devel)" {
				Version = v
			}
			for _, setting := range info.Settings {
				switch setting.Key {
				case "vcs.revision":
					Revision = setting.Value
				case "vcs.time":
					ModificationTime = setting.Value
				case "vcs.modified":
					Modified = setting.Value == "true"
				}
			}
		}
	}

	if Version == "dev" {
		return
	}
	given := Version
	if !strings.HasPrefix(Version, "v") {
		Version = "v" + Version
	}
	if !semver.IsValid(Version) {
		Version = fmt.Sprintf("invalid (%s)", given)
	}
}

func init() {
	setVersion()
}

// UserAgent returns the User-Agent header value sent with every API request.
func UserAgent() string {
	return "dyctl/" + Version
}

// Info describes the running binary.
type Info struct {
	Version  string `json:"version" yaml:"version"`
	Revision string `json:"revision,omitempty" yaml:"revision,omitempty"`
	Time     string `json:"time,omitempty" yaml:"time,omitempty"`
	Modified bool   `json:"modified,omitempty" yaml:"modified,omitempty"`
	Go       string `json:"go" yaml:"go"`
	Platform string `json:"platform" yaml:"platform"`
}

// Current returns the Info of the running binary.
func Current() Info {
	return Info{
		Version:  Version,
		Revision: Revision,
		Time:     ModificationTime,
		Modified: Modified,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
}
