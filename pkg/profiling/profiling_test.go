package profiling

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Note: Cannot run with t.Parallel() due to global variable modifications

func TestDoCPUProfiling(t *testing.T) {
	profileFile := filepath.Join(t.TempDir(), "cpu.prof")
	stop := DoCPUProfiling(profileFile)
	assert.NotNil(t, stop)
	stop()
	_, err := os.Stat(profileFile)
	assert.NoError(t, err)
}

func TestDoCPUProfiling_ErrorOsCreate(t *testing.T) {
	origOsCreate := osCreate
	defer func() {
		osCreate = origOsCreate
	}()
	osCreate = func(name string) (*os.File, error) {
		return nil, errors.New("mock error")
	}
	stop := DoCPUProfiling("invalid")
	assert.NotNil(t, stop)
	stop()
}

func TestDoCPUProfiling_ErrorStart(t *testing.T) {
	origStart := pprofStartCPUProfile
	origStop := pprofStopCPUProfile
	defer func() {
		pprofStartCPUProfile = origStart
		pprofStopCPUProfile = origStop
	}()
	pprofStartCPUProfile = func(w io.Writer) error {
		return errors.New("mock pprof error")
	}
	stopCalled := false
	pprofStopCPUProfile = func() {
		stopCalled = true
	}
	stop := DoCPUProfiling(filepath.Join(t.TempDir(), "cpu_err.prof"))
	stop()
	assert.False(t, stopCalled)
}

func TestDoMemProfiling(t *testing.T) {
	profileFile := filepath.Join(t.TempDir(), "mem.prof")
	write := DoMemProfiling(profileFile)
	_, err := os.Stat(profileFile)
	assert.True(t, os.IsNotExist(err), "profile must be written on call only")
	write()
	info, err := os.Stat(profileFile)
	assert.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestDoMemProfiling_Errors(t *testing.T) {
	origOsCreate := osCreate
	origWrite := pprofWriteHeapProfile
	defer func() {
		osCreate = origOsCreate
		pprofWriteHeapProfile = origWrite
	}()

	t.Run("create", func(t *testing.T) {
		osCreate = func(name string) (*os.File, error) {
			return nil, errors.New("mock error")
		}
		DoMemProfiling("invalid")()
		osCreate = origOsCreate
	})

	t.Run("write", func(t *testing.T) {
		written := false
		pprofWriteHeapProfile = func(w io.Writer) error {
			written = true
			return errors.New("mock pprof error")
		}
		DoMemProfiling(filepath.Join(t.TempDir(), "mem_err.prof"))()
		assert.True(t, written)
	})
}
