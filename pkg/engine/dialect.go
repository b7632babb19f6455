package engine

import (
	"fmt"
	"strconv"

	"github.com/jwebster45206/doom-launchers/pkg/campaign"
	"github.com/jwebster45206/doom-launchers/pkg/paths"
)

// dialect is the set of rules that turn a launch request into batch commands.
// standard implements every rule; the port-specific dialects embed it and
// override only where their command line differs.
type dialect interface {
	setup(p *Profile) []string
	recordSetup(p *Profile, c *campaign.Campaign, t Target) []string
	cleanup(p *Profile, c *campaign.Campaign, t Target, variant string) []string
	gameArgs(p *Profile, c *campaign.Campaign, t Target) []string
	modArgs(p *Profile, variant string) []string
	miscArgs(c *campaign.Campaign, variant string) []string
	skillArgs() []string
	warpArgs(c *campaign.Campaign, t Target) ([]string, error)
	recordArgs(t Target) []string
}

type standard struct{}

var _ dialect = standard{}

// setup copies the saved config into the install dir and moves there.
func (standard) setup(p *Profile) []string {
	return []string{
		"set start=%cd%",
		fmt.Sprintf("copy %s %s /Y", p.savedConfig(), p.installedConfig()),
		"cd " + p.installPath,
	}
}

// recordSetup sets %datetime% for timestamped demo names.
func (standard) recordSetup(p *Profile, c *campaign.Campaign, t Target) []string {
	return []string{
		`For /f "tokens=1-4 delims=/ " %%a in ('date /t') do (set mydate=%%c-%%b-%%a)`,
		`For /f "tokens=1-2 delims=/:" %%a in ('time /t') do (set mytime=%%a%%b)`,
		"set datetime=%mydate%-%mytime%",
	}
}

// cleanup files recorded demos, saves the config back and restores the
// working directory.
func (standard) cleanup(p *Profile, c *campaign.Campaign, t Target, variant string) []string {
	var commands []string
	if variant == VariantRecord {
		commands = append(commands, fmt.Sprintf(`move *.lmp "%s"`, p.campaignDemoDir(c)))
	}
	return append(commands,
		fmt.Sprintf("copy %s %s /Y", p.installedConfig(), p.savedConfig()),
		"del "+p.configName,
		"cd %start%",
	)
}

func (standard) gameArgs(p *Profile, c *campaign.Campaign, t Target) []string {
	var args []string
	if p.configArg {
		args = append(args, "-config", p.configName)
	}
	args = append(args, "-iwad", paths.WinJoin(p.home.IWADDir(), c.IWAD))

	switch {
	case c.PWAD != "" && !c.PWADIsIWAD():
		args = append(args, "-file", paths.WinJoin(p.home.WADDir(), c.PWAD))
	case p.singleFile:
		// The extra WADs below still need a -file to follow.
		args = append(args, "-file")
	}

	for _, wad := range c.CompanionWADs() {
		args = append(args, p.wadArgs(wad)...)
	}
	if c.UsesMissionWADs() && t.Kind == SingleMap && t.Mission.WAD != "" && t.Mission.WAD != c.PWAD {
		args = append(args, p.wadArgs(t.Mission.WAD)...)
	}
	for _, wad := range c.LowPriorityWADs() {
		args = append(args, p.wadArgs(wad)...)
	}
	return args
}

func (standard) modArgs(p *Profile, variant string) []string {
	return nil
}

func (standard) miscArgs(c *campaign.Campaign, variant string) []string {
	return append([]string{"-fullscreen"}, variantArgs(variant)...)
}

func (standard) skillArgs() []string {
	return []string{"-skill", strconv.Itoa(Skill)}
}

func (standard) warpArgs(c *campaign.Campaign, t Target) ([]string, error) {
	if n, ok := c.FixedWarp(); ok {
		return []string{"-warp", fmt.Sprintf("%02d", n)}, nil
	}
	scheme, err := c.WarpScheme()
	if err != nil {
		return nil, err
	}
	if scheme == campaign.WarpMap {
		return []string{"-warp", fmt.Sprintf("%02d", t.Mission.Level)}, nil
	}
	return []string{"-warp", strconv.Itoa(t.Episode.Number), strconv.Itoa(t.Mission.Number)}, nil
}

func (standard) recordArgs(t Target) []string {
	return []string{"-record", t.DemoName() + "-%datetime%.lmp"}
}

// variantArgs returns the flags shared by every dialect for a variant.
func variantArgs(variant string) []string {
	switch variant {
	case VariantNoMusic:
		return []string{"-nomusic"}
	case VariantNoMonsters:
		return []string{"-nomonsters"}
	default:
		return nil
	}
}

// crispy leaves its config where it is.
type crispy struct{ standard }

func (crispy) setup(p *Profile) []string {
	return []string{"set start=%cd%", "cd " + p.installPath}
}

func (crispy) cleanup(p *Profile, c *campaign.Campaign, t Target, variant string) []string {
	return []string{"cd %start%"}
}

// retro always pistol-starts and names levels the way the automap does.
type retro struct{ standard }

func (retro) miscArgs(c *campaign.Campaign, variant string) []string {
	return append([]string{"-fullscreen", "-pistolstart"}, variantArgs(variant)...)
}

func (r retro) warpArgs(c *campaign.Campaign, t Target) ([]string, error) {
	if _, ok := c.FixedWarp(); ok {
		return r.standard.warpArgs(c, t)
	}
	scheme, err := c.WarpScheme()
	if err != nil {
		return nil, err
	}
	if scheme == campaign.WarpMap {
		return []string{"-warp", fmt.Sprintf("MAP%02d", t.Mission.Level)}, nil
	}
	return []string{"-warp", fmt.Sprintf("E%dM%d", t.Episode.Number, t.Mission.Number)}, nil
}

// boom runs at the campaign's compatibility level.
type boom struct{ standard }

func (boom) miscArgs(c *campaign.Campaign, variant string) []string {
	var args []string
	if c.Complevel != "" {
		args = append(args, "-complevel", c.Complevel)
	}
	args = append(args, "-nowindow", "-noaccel")
	return append(args, variantArgs(variant)...)
}

// dsda keeps a demo archive per map and prints run analysis.
type dsda struct{ boom }

func (d dsda) miscArgs(c *campaign.Campaign, variant string) []string {
	args := d.boom.miscArgs(c, variant)
	return append(args, "-analysis", "-track_100k", "-time_keys", "-time_secrets")
}

// recordSetup brings previous demos of the target back so dsda numbers the
// new one after them.
func (dsda) recordSetup(p *Profile, c *campaign.Campaign, t Target) []string {
	archive := paths.WinJoin(p.campaignDemoDir(c), t.DemoName())
	return []string{fmt.Sprintf(`move "%s" "%s"`, paths.WinJoin(archive, "*.lmp"), p.installPath)}
}

func (dsda) recordArgs(t Target) []string {
	if t.Kind == AllMaps {
		return []string{"-skill", strconv.Itoa(Skill), "-record", AggregateName, "-longtics"}
	}
	return []string{"-record", t.DemoName(), "-longtics"}
}

func (d dsda) cleanup(p *Profile, c *campaign.Campaign, t Target, variant string) []string {
	var commands []string
	if variant == VariantRecord {
		archive := paths.WinJoin(p.campaignDemoDir(c), t.DemoName())
		commands = append(commands,
			fmt.Sprintf(`if not exist "%s\" mkdir "%s"`, archive, archive),
			fmt.Sprintf(`move *.lmp "%s"`, archive),
		)
	}
	return append(commands, d.standard.cleanup(p, c, t, "")...)
}

// gzdoom loads gameplay mods per variant.
type gzdoom struct{ standard }

func (gzdoom) modArgs(p *Profile, variant string) []string {
	var mods []string
	switch variant {
	case VariantSmooth:
		mods = append(mods, "SmoothDoom.pk3")
	case VariantBeautiful:
		mods = append(mods, "BDoom632.pk3")
	}
	mods = append(mods, "idclever-starter.pk3", "fullscrn_huds.pk3")

	args := make([]string, 0, 2*len(mods))
	for _, mod := range mods {
		args = append(args, "-file", paths.WinJoin(p.home.ModDir(), mod))
	}
	return args
}
