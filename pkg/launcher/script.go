// Package launcher turns campaigns and engine profiles into batch scripts and
// writes them under the launchers directory.
package launcher

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jwebster45206/doom-launchers/pkg/campaign"
	"github.com/jwebster45206/doom-launchers/pkg/engine"
	"github.com/jwebster45206/doom-launchers/pkg/paths"
)

// Script file names for whole-campaign launchers.
const (
	StartScriptName     = "start.bat"
	AggregateScriptName = "d2all.bat"
)

const echoOff = "@echo off"

// Script is one batch file: its Unix path and its lines.
type Script struct {
	Path  string
	Lines []string
}

// Builder computes scripts without touching the filesystem.
type Builder struct {
	home paths.Home
}

// NewBuilder returns a Builder writing under home.
func NewBuilder(home paths.Home) *Builder {
	return &Builder{home: home}
}

// LaunchDir is the directory holding the scripts of one campaign, engine and
// variant.
func (b *Builder) LaunchDir(c *campaign.Campaign, p *engine.Profile, variant string) string {
	return filepath.Join(b.home.UnixLaunchersDir(), c.DirectoryName(), p.Name(), variant)
}

// MapScriptName is the file name of a mission's launcher.
func MapScriptName(c *campaign.Campaign, e campaign.Episode, m campaign.Mission) string {
	return fmt.Sprintf("MAP%02d -- E%02dM%02d -- %s.bat",
		m.Level, c.DisplayEpisodeNumber(e), m.Number, m.PathName())
}

// MapScript builds the launcher that warps to one mission.
func (b *Builder) MapScript(c *campaign.Campaign, p *engine.Profile, e campaign.Episode, m campaign.Mission, variant string) (Script, error) {
	cmds, err := p.Commands(c, engine.MapTarget(e, m), variant)
	if err != nil {
		return Script{}, fmt.Errorf("failed to build %s MAP%02d launcher: %w", c.Name, m.Level, err)
	}

	banner := fmt.Sprintf(`echo "Playing %s MAP%02d: E%02dM%02d - %s"`,
		c.Name, m.Level, c.DisplayEpisodeNumber(e), m.Number, m.Name)
	lines := make([]string, 0, len(cmds)+2)
	lines = append(lines, echoOff, banner)
	return Script{
		Path:  filepath.Join(b.LaunchDir(c, p, variant), MapScriptName(c, e, m)),
		Lines: append(lines, cmds...),
	}, nil
}

// CampaignScripts builds a map launcher for every mission and every
// non-recording variant of p.
func (b *Builder) CampaignScripts(c *campaign.Campaign, p *engine.Profile) ([]Script, error) {
	var scripts []Script
	for _, variant := range playVariants(p) {
		for _, e := range c.Episodes {
			for _, m := range e.Missions {
				s, err := b.MapScript(c, p, e, m, variant)
				if err != nil {
					return nil, err
				}
				scripts = append(scripts, s)
			}
		}
	}
	return scripts, nil
}

// RecordScripts builds a recording launcher for every mission, or nothing
// when p cannot record.
func (b *Builder) RecordScripts(c *campaign.Campaign, p *engine.Profile) ([]Script, error) {
	if !p.SupportsVariant(engine.VariantRecord) {
		return nil, nil
	}

	scripts := make([]Script, 0, c.MissionCount())
	for _, e := range c.Episodes {
		for _, m := range e.Missions {
			s, err := b.MapScript(c, p, e, m, engine.VariantRecord)
			if err != nil {
				return nil, err
			}
			scripts = append(scripts, s)
		}
	}
	return scripts, nil
}

// StartScripts builds one start.bat per non-recording variant. These launch
// the campaign at its title screen.
func (b *Builder) StartScripts(c *campaign.Campaign, p *engine.Profile) ([]Script, error) {
	var scripts []Script
	for _, variant := range playVariants(p) {
		cmds, err := p.Commands(c, engine.Target{Kind: engine.TitleScreen}, variant)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s start launcher: %w", c.Name, err)
		}
		scripts = append(scripts, Script{
			Path:  filepath.Join(b.LaunchDir(c, p, variant), StartScriptName),
			Lines: append([]string{echoOff}, cmds...),
		})
	}
	return scripts, nil
}

// AggregateScript builds the script recording every map of c in one run.
// It fails with *engine.UnsupportedConfigurationError unless
// p.SupportsAggregate.
func (b *Builder) AggregateScript(c *campaign.Campaign, p *engine.Profile) (Script, error) {
	cmds, err := p.Commands(c, engine.Target{Kind: engine.AllMaps}, engine.VariantRecord)
	if err != nil {
		return Script{}, fmt.Errorf("failed to build %s %s launcher: %w", c.Name, engine.AggregateName, err)
	}
	return Script{
		Path:  filepath.Join(b.LaunchDir(c, p, engine.VariantRecord), AggregateScriptName),
		Lines: append([]string{echoOff}, cmds...),
	}, nil
}

// DemoScripts builds a playback launcher for each recorded demo. demos are
// Unix paths of .lmp files under the campaign's demo directory; each lands at
// <demo launchers>/<campaign>/<demo subdir>/<demo base name>.bat.
func (b *Builder) DemoScripts(c *campaign.Campaign, p *engine.Profile, demos []string) []Script {
	campaignDir := b.CampaignDemoDir(c)

	scripts := make([]Script, 0, len(demos))
	for _, demo := range demos {
		file := filepath.Base(demo)
		base, _, _ := strings.Cut(file, ".")

		subdir := filepath.Base(filepath.Dir(demo))
		if filepath.Clean(filepath.Dir(demo)) == filepath.Clean(campaignDir) {
			subdir = ""
		}

		winPath := paths.WinJoin(b.home.DemosDir(), c.DirectoryName(), subdir, file)
		scripts = append(scripts, Script{
			Path:  filepath.Join(b.home.UnixDemoLaunchersDir(), c.DirectoryName(), subdir, base+".bat"),
			Lines: append([]string{echoOff}, p.PlaydemoCommands(c, winPath)...),
		})
	}
	return scripts
}

// CampaignDemoDir is the Unix directory holding c's demos.
func (b *Builder) CampaignDemoDir(c *campaign.Campaign) string {
	return filepath.Join(b.home.UnixDemosDir(), c.DirectoryName())
}

// playVariants are the variants of p played rather than recorded.
func playVariants(p *engine.Profile) []string {
	var variants []string
	for _, v := range p.Variants() {
		if v != engine.VariantRecord {
			variants = append(variants, v)
		}
	}
	return variants
}
