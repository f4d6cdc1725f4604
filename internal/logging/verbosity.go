package logging

// VerbosityOptions carries the raw occurrence counts of the --quiet and
// --verbose flags plus an optional explicit filter expression (from
// --log or the LANTERN_LOG environment variable).
type VerbosityOptions struct {
	Quiet   uint
	Verbose uint
	Filter  string
}

// Decision is the outcome of resolving verbosity options: either a
// numeric level threshold or an opaque filter expression for an
// external filtering subsystem.
type Decision struct {
	Threshold Level
	Filter    string
}

// Explicit reports whether a filter expression overrides the numeric
// threshold.
func (d Decision) Explicit() bool {
	return d.Filter != ""
}

// Resolve combines the flag counts with the build-mode baseline into a
// Decision. A non-empty filter wins unconditionally and is passed
// through untouched. The arithmetic saturates: an unrepresentable sum
// yields LevelTrace and a quiet count exceeding the sum yields
// LevelOff.
func Resolve(quiet, verbose uint, defaultLevel Level, filter string) Decision {
	if filter != "" {
		return Decision{Filter: filter}
	}

	sum := uint(defaultLevel) + verbose
	if sum < verbose {
		return Decision{Threshold: LevelTrace}
	}
	if quiet >= sum {
		return Decision{Threshold: LevelOff}
	}

	switch sum - quiet {
	case 1:
		return Decision{Threshold: LevelError}
	case 2:
		return Decision{Threshold: LevelWarn}
	case 3:
		return Decision{Threshold: LevelInfo}
	case 4:
		return Decision{Threshold: LevelDebug}
	default:
		return Decision{Threshold: LevelTrace}
	}
}

// Decide resolves the options against the build-mode default.
func (v VerbosityOptions) Decide() Decision {
	return Resolve(v.Quiet, v.Verbose, DefaultVerbosity, v.Filter)
}

// VerboseFormat reports whether output should carry the extended
// prefix (timestamp, module context, span chain). Debug builds always
// use it; release builds only when --verbose was given at least once.
func (v VerbosityOptions) VerboseFormat() bool {
	return debugBuild || v.Verbose != 0
}
