package util

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading "~" or "~user" to the matching home directory.
// Paths without a leading tilde are returned unchanged.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	name, rest := path[1:], ""
	if i := strings.IndexAny(name, "/"+string(filepath.Separator)); i >= 0 {
		name, rest = name[:i], name[i+1:]
	}

	var home string
	if name == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		home = dir
	} else {
		u, err := user.Lookup(name)
		if err != nil {
			return "", fmt.Errorf("resolving home directory of %q: %w", name, err)
		}
		home = u.HomeDir
	}

	if rest == "" {
		return home, nil
	}
	return filepath.Join(home, rest), nil
}
