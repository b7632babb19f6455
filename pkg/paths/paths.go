// Package paths derives every directory the generator reads or writes from
// two roots: the Windows path the batch files run under, and the Unix path of
// the same directory as seen by the generator itself.
package paths

import (
	"path/filepath"
	"strings"
)

// Home is the doom home directory as seen from both sides.
type Home struct {
	Windows string // e.g. C:\Users\chris\doom
	Unix    string // e.g. /c/Users/chris/doom
}

// Windows-side directories, used inside generated batch files.

func (h Home) ConfigDir() string        { return WinJoin(h.Windows, "config") }
func (h Home) SourcePortsDir() string   { return WinJoin(h.Windows, "source-ports") }
func (h Home) LaunchersDir() string     { return WinJoin(h.Windows, "launchers") }
func (h Home) DemoLaunchersDir() string { return WinJoin(h.Windows, "demo-launchers") }
func (h Home) IWADDir() string          { return WinJoin(h.Windows, "iwads") }
func (h Home) WADDir() string           { return WinJoin(h.Windows, "wads") }
func (h Home) ModDir() string           { return WinJoin(h.Windows, "mods") }
func (h Home) DemosDir() string         { return WinJoin(h.Windows, "demos") }

// Unix-side directories, used for file operations.

func (h Home) UnixSourcePortsDir() string   { return filepath.Join(h.Unix, "source-ports") }
func (h Home) UnixLaunchersDir() string     { return filepath.Join(h.Unix, "launchers") }
func (h Home) UnixDemoLaunchersDir() string { return filepath.Join(h.Unix, "demo-launchers") }
func (h Home) UnixDemosDir() string         { return filepath.Join(h.Unix, "demos") }

// WinJoin joins path elements with backslashes, skipping empty elements and
// trailing separators so the result never holds a doubled separator.
func WinJoin(elem ...string) string {
	parts := make([]string, 0, len(elem))
	for i, e := range elem {
		if i < len(elem)-1 {
			e = strings.TrimRight(e, `\`)
		}
		if e == "" {
			continue
		}
		parts = append(parts, e)
	}
	return strings.Join(parts, `\`)
}
