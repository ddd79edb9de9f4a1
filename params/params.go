package params

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

var (
	ParamsPath string = GetParamsPath()
	BasePath   string = GetBasePath()
)

// Params
const (
	SOAR_SETTINGS = "SoarSettings"
	ACTIVE_TASK   = "SoarActiveTask"
)

// Exists returns whether the given file or directory exists
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrap(err, "could not check param file stats")
}

func GetParamsPath() string {
	if p := os.Getenv("SOARD_PARAMS"); p != "" {
		return p
	}
	return "/data/params/d"
}

func GetBasePath() string {
	if p := os.Getenv("SOARD_DATA"); p != "" {
		return p
	}
	exists, err := Exists("/data/media/0")
	if err != nil {
		slog.Warn("could not check if /data/media/0 exists", "error", err)
	}
	if exists {
		return "/data/media/0/soard"
	}
	return "media/"
}

func EnsureParamDirectories() {
	err := os.MkdirAll(ParamsPath, 0o775)
	if err != nil {
		slog.Warn("could not make params directory", "error", err, "directory", ParamsPath)
	}
}

func IsString(data []byte) bool {
	for _, b := range data {
		if (b < 32 || b > 126) && !(b == 9 || b == 13 || b == 10) {
			return false
		}
	}
	return true
}

func GetParams() ([]string, error) {
	files, err := os.ReadDir(ParamsPath)
	if err != nil {
		return nil, errors.Wrap(err, "could not read params directory")
	}

	paramFiles := []string{}
	for _, file := range files {
		name := file.Name()
		if file.Type().IsRegular() && name[0] != '.' {
			paramFiles = append(paramFiles, name)
		}
	}
	sort.Strings(paramFiles)

	return paramFiles, nil
}

func ParamPath(name string) string {
	return filepath.Join(ParamsPath, name)
}

func GetParam(name string) ([]byte, error) {
	data, err := os.ReadFile(ParamPath(name))
	return data, errors.Wrapf(err, "could not read param %s", name)
}

// lockParams takes the directory lock shared with other param writers.
func lockParams(dir string) (*flock.Flock, error) {
	lockPath := filepath.Join(filepath.Dir(dir), ".lock")
	fileLock := flock.New(lockPath)

	retries := 0
	for {
		locked, err := fileLock.TryLock()
		if err != nil {
			return nil, errors.Wrap(err, "could not try locking params directory")
		}
		if locked {
			return fileLock, nil
		}
		retries += 1
		if retries > 30 {
			// try to force the lock to be removed
			if err := os.Remove(lockPath); err != nil {
				slog.Debug("failed to force delete params lock", "error", err)
			}
		}
		if retries > 50 {
			return nil, errors.New("could not obtain lock")
		}
		// if we didn't obtain the lock let's try again after a short delay
		time.Sleep(1 * time.Millisecond)
	}
}

func unlockParams(fileLock *flock.Flock) {
	if err := fileLock.Unlock(); err != nil {
		slog.Error("could not unlock params directory", "error", err)
	}
	if err := os.Remove(fileLock.Path()); err != nil && !os.IsNotExist(err) {
		slog.Error("could not remove params lock file", "error", err)
	}
}

func syncDir(dir string) error {
	directory, err := os.Open(dir)
	if err != nil {
		return errors.Wrap(err, "could not open params directory")
	}
	defer directory.Close()

	err = directory.Sync()
	return errors.Wrap(err, "could not fsync params directory")
}

func PutParam(name string, data []byte) error {
	path := ParamPath(name)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o775); err != nil {
		return errors.Wrap(err, "could not create params directory")
	}
	file, err := os.CreateTemp(dir, ".tmp_value_"+filepath.Base(path))
	if err != nil {
		return errors.Wrap(err, "could not create temp param file")
	}
	tmpName := file.Name()
	defer os.Remove(tmpName)
	defer file.Close()

	_, err = file.Write(data)
	if err != nil {
		return errors.Wrap(err, "could not write data to temp param file")
	}

	err = file.Sync()
	if err != nil {
		return errors.Wrap(err, "could not fsync temp param file")
	}

	fileLock, err := lockParams(dir)
	if err != nil {
		return err
	}
	defer unlockParams(fileLock)

	err = os.Rename(tmpName, path)
	if err != nil {
		return errors.Wrap(err, "could not move temp param file to persistent location")
	}

	return syncDir(dir)
}

func RemoveParam(name string) error {
	path := ParamPath(name)
	dir := filepath.Dir(path)

	fileLock, err := lockParams(dir)
	if err != nil {
		return err
	}
	defer unlockParams(fileLock)

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "could not remove param")
	}

	return syncDir(dir)
}
