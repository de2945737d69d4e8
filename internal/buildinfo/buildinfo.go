// Package buildinfo carries identifiers stamped at build time.
package buildinfo

// Set via -ldflags at release build time.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// Short returns a compact identifier for window titles and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if len(Commit) >= 7 {
		return Commit[:7]
	}
	return "dev"
}
