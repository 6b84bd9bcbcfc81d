// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep identity strings in one place instead of scattered literals.
package meta

const (
	// Project Identity
	AppName   = "vcdbrand"
	EnvPrefix = "VCD"

	// Directory Layout
	HomeDir = ".vcdbrand"

	// Config path overrides
	EnvConfigPath = "VCDBRAND_CONFIG_PATH"
	EnvConfigHome = "VCDBRAND_CONFIG_HOME"
)
