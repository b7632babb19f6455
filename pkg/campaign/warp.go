package campaign

import "strings"

// WarpScheme is how an engine addresses a level on the command line.
type WarpScheme int

const (
	// WarpEpisodic addresses levels by episode and mission number (ExMy).
	WarpEpisodic WarpScheme = iota + 1
	// WarpMap addresses levels by absolute map number (MAPxx).
	WarpMap
)

func (s WarpScheme) String() string {
	switch s {
	case WarpEpisodic:
		return "episodic"
	case WarpMap:
		return "map"
	default:
		return "unknown"
	}
}

var warpSchemes = map[string]WarpScheme{
	"DOOM.WAD":     WarpEpisodic,
	"DOOM2.WAD":    WarpMap,
	"TNT.WAD":      WarpMap,
	"PLUTONIA.WAD": WarpMap,
}

// WarpScheme returns the level-selection scheme for the campaign's IWAD.
func (c *Campaign) WarpScheme() (WarpScheme, error) {
	if s, ok := warpSchemes[strings.ToUpper(c.IWAD)]; ok {
		return s, nil
	}
	return 0, &UnsupportedTitleError{Name: c.Name, IWAD: c.IWAD}
}
