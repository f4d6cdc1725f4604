//go:build debug

package logging

// DefaultVerbosity is the baseline applied before flag counts. Debug
// builds start at debug.
const DefaultVerbosity Level = LevelDebug

const debugBuild = true
