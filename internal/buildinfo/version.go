// Package buildinfo reports which build of nwalign is running.
//
// Release builds stamp Version, Commit and Date at link time, e.g.
//
//	go build -ldflags "-X github.com/katalvlaran/nwalign/internal/buildinfo.Version=v0.3.0" ./cmd/nwalign
//
// Values the linker left empty fall back to the VCS stamp the go command
// embeds in binaries built from a checkout.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Link-time stamps.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

const unknown = "unknown"

// Info is the resolved build description.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Read merges the link-time stamps with the embedded VCS settings.
func Read() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.Commit == "":
				info.Commit = s.Value
			case s.Key == "vcs.time" && info.Date == "":
				info.Date = s.Value
			}
		}
	}
	if info.Commit == "" {
		info.Commit = unknown
	}
	if info.Date == "" {
		info.Date = unknown
	}

	return info
}

// String renders info on one line: "dev (commit abc123, built 2025-01-02T03:04:05Z)".
func (i Info) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", i.Version, i.Commit, i.Date)
}

// String is Read().String().
func String() string { return Read().String() }

// Template is the cobra --version template.
func Template() string { return "{{.Name}} " + String() + "\n" }
