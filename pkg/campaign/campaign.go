package campaign

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Record is one flat row of a campaign CSV file.
type Record struct {
	GameName      string
	IWAD          string
	PWAD          string
	Complevel     string
	ReleaseDate   string
	EpisodeName   string
	EpisodeNumber int
	MissionName   string
	MissionNumber int
	LevelNumber   int
	IsSecret      bool
}

// Campaign is a game, mod or megawad made of ordered episodes. The shared
// attributes are taken from the first row of its data file.
type Campaign struct {
	Name        string    `json:"name"`
	IWAD        string    `json:"iwad"`
	PWAD        string    `json:"pwad"`
	Complevel   string    `json:"complevel"`
	ReleaseDate string    `json:"release_date"`
	Episodes    []Episode `json:"episodes"`
}

// Episode is a numbered group of missions.
type Episode struct {
	Name     string    `json:"name"`
	Number   int       `json:"number"`
	Missions []Mission `json:"missions"`
}

// Mission is a single playable map.
type Mission struct {
	Name     string `json:"name"`
	Number   int    `json:"number"` // position within the episode, used for ExMy warps
	Level    int    `json:"level"`  // absolute map number, used for MAPxx warps
	WAD      string `json:"wad,omitempty"`
	IsSecret bool   `json:"is_secret,omitempty"`
}

// MissionCount returns the number of missions across all episodes.
func (c *Campaign) MissionCount() int {
	n := 0
	for _, e := range c.Episodes {
		n += len(e.Missions)
	}
	return n
}

// DirectoryName is the campaign's directory under the launchers and demos
// roots, e.g. "1993-12-10 -- The Ultimate Doom".
func (c *Campaign) DirectoryName() string {
	return fmt.Sprintf("%s -- %s", c.ReleaseDate, strings.ReplaceAll(stripControl(c.Name), ":", " --"))
}

var pathNameReplacer = strings.NewReplacer("/", "", "!", "", "'", "")

// PathName returns the mission name with characters that are awkward in
// Windows file names removed.
func (m Mission) PathName() string {
	return pathNameReplacer.Replace(stripControl(m.Name))
}

// stripControl drops tabs and other control characters, which cannot appear
// in a Windows file name.
func stripControl(s string) string {
	out, _, err := transform.String(runes.Remove(runes.In(unicode.Cc)), s)
	if err != nil {
		return s
	}
	return out
}
