// Package engine describes the command-line dialects of the supported source
// ports and builds the batch commands that launch them.
package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jwebster45206/doom-launchers/pkg/campaign"
	"github.com/jwebster45206/doom-launchers/pkg/paths"
)

// Configuration variants a profile may offer.
const (
	VariantMusic      = "music"
	VariantNoMusic    = "nomusic"
	VariantNoMonsters = "nomonsters"
	VariantSmooth     = "smooth"
	VariantBeautiful  = "beautiful"
	VariantRecord     = "record"
)

// Skill is the difficulty every launcher starts on (Ultra-Violence).
const Skill = 4

// Profile is one installed source port. Profiles are immutable once built and
// safe to share.
type Profile struct {
	name         string
	friendlyName string
	configName   string
	exeName      string
	installPath  string
	version      string
	variants     []string
	singleFile   bool // extra WADs follow a single -file flag
	configArg    bool // pass -config <configName>
	aggregate    bool // can record every map back-to-back
	home         paths.Home
	dialect      dialect
}

// Option customises a Profile built by New.
type Option func(*Profile)

// WithVariants replaces the profile's configuration variants.
func WithVariants(variants ...string) Option {
	return func(p *Profile) {
		p.variants = slices.Clone(variants)
	}
}

// New builds the profile for a source port directory prefix such as "dsda"
// or "crispy_doom".
func New(port, version string, home paths.Home, opts ...Option) (*Profile, error) {
	spec, ok := ports[port]
	if !ok {
		return nil, &UnsupportedEngineError{Port: port}
	}

	p := &Profile{
		name:         spec.name,
		friendlyName: spec.friendlyName,
		configName:   spec.configName,
		exeName:      spec.exeName,
		installPath:  paths.WinJoin(home.SourcePortsDir(), port+"-"+version),
		version:      version,
		variants:     slices.Clone(spec.variants),
		singleFile:   spec.singleFile,
		configArg:    spec.configArg,
		aggregate:    spec.aggregate,
		home:         home,
		dialect:      spec.dialect,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Profile) Name() string         { return p.name }
func (p *Profile) FriendlyName() string { return p.friendlyName }
func (p *Profile) Version() string      { return p.version }
func (p *Profile) ExeName() string      { return p.exeName }
func (p *Profile) ConfigName() string   { return p.configName }
func (p *Profile) InstallPath() string  { return p.installPath }

// Variants returns the configuration variants the profile supports, in
// generation order.
func (p *Profile) Variants() []string {
	return slices.Clone(p.variants)
}

// SupportsVariant reports whether variant is one of the profile's variants.
func (p *Profile) SupportsVariant(variant string) bool {
	return slices.Contains(p.variants, variant)
}

// SupportsAggregate reports whether the profile can record a run of every
// map back-to-back.
func (p *Profile) SupportsAggregate() bool {
	return p.aggregate && p.SupportsVariant(VariantRecord)
}

func (p *Profile) String() string {
	return fmt.Sprintf("%s v%s", p.friendlyName, p.version)
}

// SetupCommands returns the commands run before the engine starts.
func (p *Profile) SetupCommands() []string {
	return p.dialect.setup(p)
}

// RecordSetupCommands returns the commands that prepare a demo recording of t.
func (p *Profile) RecordSetupCommands(c *campaign.Campaign, t Target) []string {
	return p.dialect.recordSetup(p, c, t)
}

// LaunchCommand returns the command line that starts the engine on t.
func (p *Profile) LaunchCommand(c *campaign.Campaign, t Target, variant string) (string, error) {
	if err := p.check(t, variant); err != nil {
		return "", err
	}

	args := []string{p.exeName}
	args = append(args, p.dialect.gameArgs(p, c, t)...)
	args = append(args, p.dialect.modArgs(p, variant)...)
	args = append(args, p.dialect.miscArgs(c, variant)...)
	if t.Kind == SingleMap {
		args = append(args, p.dialect.skillArgs()...)
		warp, err := p.dialect.warpArgs(c, t)
		if err != nil {
			return "", err
		}
		args = append(args, warp...)
	}
	if variant == VariantRecord {
		args = append(args, p.dialect.recordArgs(t)...)
	}
	return strings.Join(args, " "), nil
}

// CleanupCommands returns the commands run after the engine exits.
func (p *Profile) CleanupCommands(c *campaign.Campaign, t Target, variant string) ([]string, error) {
	if err := p.check(t, variant); err != nil {
		return nil, err
	}
	return p.dialect.cleanup(p, c, t, variant), nil
}

// Commands returns the full command sequence for one launcher: record setup
// when recording, then setup, launch and cleanup.
func (p *Profile) Commands(c *campaign.Campaign, t Target, variant string) ([]string, error) {
	launch, err := p.LaunchCommand(c, t, variant)
	if err != nil {
		return nil, err
	}
	cleanup, err := p.CleanupCommands(c, t, variant)
	if err != nil {
		return nil, err
	}

	var commands []string
	if variant == VariantRecord {
		commands = append(commands, p.RecordSetupCommands(c, t)...)
	}
	commands = append(commands, p.SetupCommands()...)
	commands = append(commands, launch)
	return append(commands, cleanup...), nil
}

// PlaydemoCommands returns the commands that play back the demo at demoPath,
// a Windows path.
func (p *Profile) PlaydemoCommands(c *campaign.Campaign, demoPath string) []string {
	t := Target{Kind: TitleScreen}

	args := []string{p.exeName}
	args = append(args, p.dialect.gameArgs(p, c, t)...)
	args = append(args, p.dialect.miscArgs(c, "")...)
	args = append(args, "-playdemo", `"`+demoPath+`"`)

	commands := p.SetupCommands()
	commands = append(commands, strings.Join(args, " "))
	return append(commands, p.dialect.cleanup(p, c, t, "")...)
}

func (p *Profile) check(t Target, variant string) error {
	if !p.SupportsVariant(variant) {
		return &UnsupportedConfigurationError{Engine: p.name, Variant: variant}
	}
	if t.Kind == AllMaps && !p.SupportsAggregate() {
		return &UnsupportedConfigurationError{Engine: p.name, Variant: AggregateName}
	}
	return nil
}

// wadArgs returns the arguments that load an extra WAD from the WAD dir.
func (p *Profile) wadArgs(wad string) []string {
	path := paths.WinJoin(p.home.WADDir(), wad)
	if p.singleFile {
		return []string{path}
	}
	return []string{"-file", path}
}

// campaignDemoDir is the Windows directory holding a campaign's demos.
func (p *Profile) campaignDemoDir(c *campaign.Campaign) string {
	return paths.WinJoin(p.home.DemosDir(), c.DirectoryName())
}

func (p *Profile) installedConfig() string {
	return paths.WinJoin(p.installPath, p.configName)
}

func (p *Profile) savedConfig() string {
	return paths.WinJoin(p.home.ConfigDir(), p.configName)
}

// Find returns the profile named name, or nil.
func Find(profiles []*Profile, name string) *Profile {
	for _, p := range profiles {
		if p.name == name {
			return p
		}
	}
	return nil
}
