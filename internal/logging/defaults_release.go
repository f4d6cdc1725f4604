//go:build !debug

package logging

// DefaultVerbosity is the baseline applied before flag counts. Release
// builds start at warn.
const DefaultVerbosity Level = LevelWarn

const debugBuild = false
