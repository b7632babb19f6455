package engine

import (
	"fmt"
	"os"
	"strings"

	"github.com/jwebster45206/doom-launchers/pkg/paths"
)

// Discover builds a profile for every "<port>-<version>" directory in dir,
// the Unix view of the source ports directory. Directories are visited in
// name order.
func Discover(dir string, home paths.Home) ([]*Profile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source ports directory: %w", err)
	}

	var profiles []*Profile
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		port, version, ok := strings.Cut(entry.Name(), "-")
		if skippedPorts[port] {
			continue
		}
		if _, known := ports[port]; !ok || version == "" || !known {
			return nil, &UnsupportedEngineError{Dir: entry.Name(), Port: port}
		}

		p, err := New(port, version, home)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
