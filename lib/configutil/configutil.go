package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/titanous/json5"
)

func splitExt(f string) (string, string) {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i] == '.' {
			return f[0:i], f[i+1:]
		}
	}
	return f, ""
}

func localPath(name string) string {
	prefixname, ext := splitExt(filepath.Base(name))
	return filepath.Join(
		filepath.Dir(name),
		fmt.Sprintf("%s.local.%s", prefixname, ext),
	)
}

func readJson5[T any](path string, out *T) (found bool, err error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(contents) == 0 {
		return false, nil
	}
	err = json5.Unmarshal(contents, out)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}

// ReadConfigWithDefaults reads a configuration file on top of `defaults`,
// `name` should come with a file extension, it will automatically be lopped
// off to produce the local override. Files are decoded in this order, later
// ones win:
// 1. <name>.<ext>
// 2. <name>.local.<ext>
//
// Only keys present in a file replace a value, so a key explicitly set to
// 0, "" or [] is kept as such. Maps in `defaults` are updated in place.
// Neither file existing is not an error, `defaults` is returned as-is.
func ReadConfigWithDefaults[T any](name string, defaults T) (T, error) {
	out := defaults

	foundDefault, err := readJson5(name, &out)
	if err != nil {
		return defaults, err
	}

	local := localPath(name)
	foundLocal, err := readJson5(local, &out)
	if err != nil {
		return defaults, err
	}
	if foundLocal {
		slog.Info("merging config with local overrides", "local", local)
	}

	if !foundDefault && !foundLocal {
		slog.Debug("no config file found, using defaults", "path", name)
	}
	return out, nil
}
