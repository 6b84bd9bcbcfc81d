// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Provide build-time version information (Git commit, state) to the CLI.
package version

import (
	"fmt"
	"runtime/debug"
)

// GetVersion returns the version string derived from build info. Tagged
// builds report the module version; untagged builds report the short VCS
// revision, appended with "(dirty)" if the tree was modified. Without build
// info it returns "dev".
func GetVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	var modified bool

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			if setting.Value == "true" {
				modified = true
			}
		}
	}

	if revision == "" {
		return "dev"
	}

	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
