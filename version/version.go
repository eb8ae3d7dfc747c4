package version

const (
	// SemVer is used as the fallback version of the library when not
	// using git describe. It uses semantic versioning format.
	SemVer = "0.3.0-dev"
)

// GitCommitHash uses git rev-parse HEAD to find the commit hash, which
// is helpful when working with development builds. See Makefile.
var GitCommitHash = ""
