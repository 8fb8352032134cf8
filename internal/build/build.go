// Package build holds build-time information about the dynctl binary.
package build

// Version and Commit are set with -ldflags "-X" at release time.
var (
	Version = "dev"
	Commit  = "none"
)

// String formats the version for display.
func String() string {
	return Version + " (" + Commit + ")"
}
