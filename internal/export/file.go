package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeFileAtomic writes data to dir/name through a temporary file in the
// same directory, so readers never see a partially written export. The
// temporary file is removed on failure.
func writeFileAtomic(dir, name string, data []byte) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", &IOError{Op: "resolve", Path: dir, Err: err}
	}

	info, err := os.Stat(absDir)
	if err != nil {
		return "", &IOError{Op: "stat", Path: absDir, Err: err}
	}
	if !info.IsDir() {
		return "", &IOError{Op: "stat", Path: absDir, Err: fmt.Errorf("not a directory")}
	}

	target := filepath.Join(absDir, name)

	tmp, err := os.CreateTemp(absDir, "."+name+".*.tmp")
	if err != nil {
		return "", &IOError{Op: "create", Path: target, Err: err}
	}
	tmpPath := tmp.Name()

	fail := func(op string, err error) (string, error) {
		tmp.Close()
		os.Remove(tmpPath)
		return "", &IOError{Op: op, Path: target, Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		return fail("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", &IOError{Op: "close", Path: target, Err: err}
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return "", &IOError{Op: "chmod", Path: target, Err: err}
	}
	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return "", &IOError{Op: "rename", Path: target, Err: err}
	}

	return target, nil
}
