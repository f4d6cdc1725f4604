package logging_test

import (
	"testing"

	"lantern/internal/logging"
)

func TestResolveDefaults(t *testing.T) {
	tests := []struct {
		name         string
		quiet        uint
		verbose      uint
		defaultLevel logging.Level
		want         logging.Level
	}{
		{"release baseline", 0, 0, logging.LevelWarn, logging.LevelWarn},
		{"debug baseline", 0, 0, logging.LevelDebug, logging.LevelDebug},
		{"single verbose", 0, 1, logging.LevelWarn, logging.LevelInfo},
		{"single quiet", 1, 0, logging.LevelWarn, logging.LevelError},
		{"net of both", 5, 5, logging.LevelWarn, logging.LevelWarn},
		{"quiet to silence", 2, 0, logging.LevelWarn, logging.LevelOff},
		{"quiet underflow clamps", 10, 0, logging.LevelWarn, logging.LevelOff},
		{"verbose overflow clamps", 0, 10, logging.LevelWarn, logging.LevelTrace},
		{"exactly trace", 0, 3, logging.LevelWarn, logging.LevelTrace},
		{"past trace", 0, 4, logging.LevelWarn, logging.LevelTrace},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := logging.Resolve(tc.quiet, tc.verbose, tc.defaultLevel, "")
			if got.Explicit() {
				t.Fatalf("expected threshold decision, got filter %q", got.Filter)
			}
			if got.Threshold != tc.want {
				t.Fatalf("Resolve(%d, %d, %v) = %v, want %v", tc.quiet, tc.verbose, tc.defaultLevel, got.Threshold, tc.want)
			}
		})
	}
}

func TestResolveExplicitFilter(t *testing.T) {
	combos := []struct{ quiet, verbose uint }{
		{0, 0}, {5, 5}, {10, 0}, {0, 10},
	}
	for _, combo := range combos {
		got := logging.Resolve(combo.quiet, combo.verbose, logging.LevelWarn, "app=debug")
		if !got.Explicit() {
			t.Fatalf("quiet=%d verbose=%d: expected explicit decision", combo.quiet, combo.verbose)
		}
		if got.Filter != "app=debug" {
			t.Fatalf("filter expression altered: %q", got.Filter)
		}
	}
}

func TestResolveMonotonic(t *testing.T) {
	for _, defaultLevel := range []logging.Level{logging.LevelWarn, logging.LevelDebug} {
		var prev logging.Level
		for verbose := uint(0); verbose <= 8; verbose++ {
			got := logging.Resolve(0, verbose, defaultLevel, "").Threshold
			if got < prev {
				t.Fatalf("threshold decreased as verbose grew: %v after %v", got, prev)
			}
			prev = got
		}

		prev = logging.LevelTrace
		for quiet := uint(0); quiet <= 8; quiet++ {
			got := logging.Resolve(quiet, 0, defaultLevel, "").Threshold
			if got > prev {
				t.Fatalf("threshold increased as quiet grew: %v after %v", got, prev)
			}
			prev = got
		}
	}
}

func TestVerboseFormat(t *testing.T) {
	if (logging.VerbosityOptions{}).VerboseFormat() {
		t.Fatal("release build without --verbose should use the short format")
	}
	if !(logging.VerbosityOptions{Verbose: 1}).VerboseFormat() {
		t.Fatal("--verbose should switch to the extended format")
	}
}

func TestDecide(t *testing.T) {
	opts := logging.VerbosityOptions{Verbose: 1}
	got := opts.Decide()
	want := logging.Resolve(0, 1, logging.DefaultVerbosity, "")
	if got != want {
		t.Fatalf("Decide() = %+v, want %+v", got, want)
	}
}
