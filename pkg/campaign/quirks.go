package campaign

import "strings"

// Title exceptions. Every special case for a named campaign or PWAD lives in
// this table; nothing else in the module compares titles.
var quirks = struct {
	// By campaign name.
	fixedWarp      map[string]int
	missionWADs    map[string]bool
	displayEpisode map[string]int

	// By upper-cased PWAD file name.
	companionWADs map[string][]string
	noSpriteFix   map[string]bool
	noPlasmaFix   map[string]bool
	iwadAsPWAD    map[string]bool
}{
	// The Master Levels ship every map as its own WAD, each starting on MAP01.
	fixedWarp:   map[string]int{"Master Levels for Doom II": 1},
	missionWADs: map[string]bool{"Master Levels for Doom II": true},

	// SIGIL is billed as episode 5 but replaces episode 3 in the engine, so the
	// data says 3 for warping and file names say 5.
	displayEpisode: map[string]int{"SIGIL": 5},

	companionWADs: map[string][]string{"BTSX_E1A.WAD": {"btsx_e1b.wad"}},
	noSpriteFix:   map[string]bool{"ANTA_REQ.WAD": true, "EVITERNITY.WAD": true},
	noPlasmaFix:   map[string]bool{"ANTA_REQ.WAD": true},
	iwadAsPWAD: map[string]bool{
		"DOOM.WAD":     true,
		"DOOM2.WAD":    true,
		"PLUTONIA.WAD": true,
		"TNT.WAD":      true,
	},
}

// Low-priority fix-up WADs loaded after the campaign's own files.
const (
	SpriteFixDoomWAD  = "D1SPFX19.WAD"
	SpriteFixDoom2WAD = "D2SPFX19.WAD"
	PlasmaFixWAD      = "DSPLASMA.wad"
)

// FixedWarp reports the map every mission of the campaign warps to, for
// campaigns that ignore per-mission numbering.
func (c *Campaign) FixedWarp() (int, bool) {
	n, ok := quirks.fixedWarp[c.Name]
	return n, ok
}

// UsesMissionWADs reports whether each mission loads its own WAD file.
func (c *Campaign) UsesMissionWADs() bool {
	return quirks.missionWADs[c.Name]
}

// DisplayEpisodeNumber returns the episode number shown to the player, which
// may differ from the number used for warping.
func (c *Campaign) DisplayEpisodeNumber(e Episode) int {
	if n, ok := quirks.displayEpisode[c.Name]; ok {
		return n
	}
	return e.Number
}

// CompanionWADs returns extra files that must load alongside the PWAD.
func (c *Campaign) CompanionWADs() []string {
	return quirks.companionWADs[c.pwadKey()]
}

// PWADIsIWAD reports whether the campaign is an unmodified commercial game,
// in which case there is no PWAD to load.
func (c *Campaign) PWADIsIWAD() bool {
	return quirks.iwadAsPWAD[c.pwadKey()]
}

// LowPriorityWADs returns the fix-up WADs compatible with the campaign, in
// load order.
func (c *Campaign) LowPriorityWADs() []string {
	var wads []string
	pwad := c.pwadKey()
	if !quirks.noSpriteFix[pwad] {
		if strings.EqualFold(c.IWAD, "DOOM.WAD") {
			wads = append(wads, SpriteFixDoomWAD)
		} else {
			wads = append(wads, SpriteFixDoom2WAD)
		}
	}
	if !quirks.noPlasmaFix[pwad] {
		wads = append(wads, PlasmaFixWAD)
	}
	return wads
}

// WAD names are case-insensitive on the engines' side.
func (c *Campaign) pwadKey() string {
	return strings.ToUpper(c.PWAD)
}
