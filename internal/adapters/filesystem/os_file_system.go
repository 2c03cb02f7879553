package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"runsh/internal/ports"
)

// OsFileSystem implements ports.FileSystem on top of an afero filesystem.
// Production code uses the real OS filesystem; tests swap in a MemMapFs.
type OsFileSystem struct {
	fs afero.Fs
}

func ProvideOsFileSystem() *OsFileSystem {
	return &OsFileSystem{fs: afero.NewOsFs()}
}

func NewFileSystem(fs afero.Fs) *OsFileSystem {
	return &OsFileSystem{fs: fs}
}

func (f *OsFileSystem) ReadFile(path string) ([]byte, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return afero.ReadFile(f.fs, path)
}

func (f *OsFileSystem) WriteFile(path string, content []byte, accessMode ports.AccessMode) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}

	if err := f.fs.MkdirAll(filepath.Dir(path), getOsFileModeForAccessMode(ports.ReadWriteExecute)); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := afero.WriteFile(f.fs, path, content, getOsFileModeForAccessMode(accessMode)); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (f *OsFileSystem) FileExists(path string) (bool, error) {
	path, err := expandHome(path)
	if err != nil {
		return false, err
	}

	_, err = f.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists: %w", err)
}

func (f *OsFileSystem) MakeExecutable(path string) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}

	if err := f.fs.Chmod(path, 0755); err != nil {
		return fmt.Errorf("failed to make file executable: %w", err)
	}
	return nil
}

func expandHome(path string) (string, error) {
	if len(path) > 0 && path[:1] == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

func getOsFileModeForAccessMode(accessMode ports.AccessMode) os.FileMode {
	switch accessMode {
	case ports.ReadWrite:
		return 0600
	case ports.ReadWriteExecute:
		return 0700
	case ports.ReadAllWriteOwner:
		return 0644
	default:
		return 0600
	}
}

var _ ports.FileSystem = (*OsFileSystem)(nil)
