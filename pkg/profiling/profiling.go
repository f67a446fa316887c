package profiling

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
)

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofStopCPUProfile   = pprof.StopCPUProfile
	pprofWriteHeapProfile = func(w io.Writer) error {
		return pprof.WriteHeapProfile(w)
	}
)

// DoCPUProfiling starts CPU profiling into fileName and returns the func
// that stops it. Failures are logged and the returned func is a no-op.
func DoCPUProfiling(fileName string) (stop func()) {
	f, err := osCreate(fileName)
	if err != nil {
		slog.Error("could not create CPU profile", "file", fileName, "error", err)
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		slog.Error("could not start CPU profile", "file", fileName, "error", err)
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		_ = f.Close()
	}
}

// DoMemProfiling returns a func that writes a heap profile to fileName.
// Call it on exit.
func DoMemProfiling(fileName string) (write func()) {
	return func() {
		f, err := osCreate(fileName)
		if err != nil {
			slog.Error("could not create memory profile", "file", fileName, "error", err)
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err = pprofWriteHeapProfile(f); err != nil {
			slog.Error("could not write memory profile", "file", fileName, "error", err)
		}
	}
}
