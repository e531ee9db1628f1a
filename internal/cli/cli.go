package cli

import (
	cmdpkg "github.com/clipdeck/clipdeck/internal/cli/cmd"
)

// Execute runs the root command.
func Execute() {
	cmdpkg.Execute()
}

// SetVersionInfo passes version information through to the command layer.
func SetVersionInfo(version, buildTime, commit string) {
	cmdpkg.SetVersionInfo(version, buildTime, commit)
}
