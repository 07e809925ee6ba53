// Package profile provides optional runtime profiling for the setcomp
// application.
//
// Profiling integrates [github.com/pkg/profile] and is compiled in only
// when the "pprof" build tag is set. Without the tag every operation is
// a no-op with zero runtime overhead.
//
// With the tag set, select a mode at startup and stop the returned
// controller on exit:
//
//	ctrl := profile.Config(func() (string, string, bool) {
//	    return "cpu", "/tmp/profiles", false
//	}).Start()
//	defer ctrl.Stop()
//
// Use [Modes] to list the supported modes. Profile files are written to
// the configured directory with names matching the mode, such as
// cpu.pprof or heap.pprof, and analyzed with go tool pprof.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
