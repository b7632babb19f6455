package launcher

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwebster45206/doom-launchers/pkg/campaign"
	"github.com/jwebster45206/doom-launchers/pkg/engine"
	"github.com/jwebster45206/doom-launchers/pkg/paths"
)

// Demo subdirectories created for every campaign.
var demoDirs = []string{"external", "highlights", engine.AggregateName}

// demoEngine plays back recorded demos.
const demoEngine = "dsda"

// Generator emits every launcher of a campaign for a set of profiles.
type Generator struct {
	builder  *Builder
	writer   *Writer
	profiles []*engine.Profile
	logger   *slog.Logger
}

// NewGenerator returns a Generator for the installed profiles.
func NewGenerator(home paths.Home, profiles []*engine.Profile, writer *Writer, logger *slog.Logger) *Generator {
	return &Generator{
		builder:  NewBuilder(home),
		writer:   writer,
		profiles: profiles,
		logger:   logger,
	}
}

// Generate writes the start, aggregate, map and recording launchers of c for
// every profile, creates its demo directories, then writes a playback
// launcher for every demo already recorded. Existing files are overwritten;
// stale ones are left alone.
func (g *Generator) Generate(ctx context.Context, c *campaign.Campaign) error {
	log := g.logger.With("campaign", c.Name)
	log.Info("Generating launchers", "engines", len(g.profiles), "missions", c.MissionCount())

	for _, p := range g.profiles {
		if err := ctx.Err(); err != nil {
			return err
		}
		scripts, err := g.profileScripts(c, p)
		if err != nil {
			return err
		}
		if err := g.writer.WriteAll(scripts); err != nil {
			return err
		}
		log.Debug("Wrote engine launchers", "engine", p.Name(), "scripts", len(scripts))
	}

	demoDir := g.builder.CampaignDemoDir(c)
	for _, dir := range demoDirs {
		if err := os.MkdirAll(filepath.Join(demoDir, dir), 0o755); err != nil {
			return fmt.Errorf("failed to create demo directory: %w", err)
		}
	}

	player := engine.Find(g.profiles, demoEngine)
	if player == nil {
		log.Info("Demo player not installed, skipping demo launchers", "engine", demoEngine)
		return nil
	}
	demos, err := FindDemos(demoDir)
	if err != nil {
		return err
	}
	return g.writer.WriteAll(g.builder.DemoScripts(c, player, demos))
}

func (g *Generator) profileScripts(c *campaign.Campaign, p *engine.Profile) ([]Script, error) {
	scripts, err := g.builder.StartScripts(c, p)
	if err != nil {
		return nil, err
	}

	if p.SupportsAggregate() {
		s, err := g.builder.AggregateScript(c, p)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, s)
	}

	maps, err := g.builder.CampaignScripts(c, p)
	if err != nil {
		return nil, err
	}
	scripts = append(scripts, maps...)

	records, err := g.builder.RecordScripts(c, p)
	if err != nil {
		return nil, err
	}
	return append(scripts, records...), nil
}

// FindDemos returns every .lmp file under dir in lexical order.
func FindDemos(dir string) ([]string, error) {
	var demos []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".lmp") {
			demos = append(demos, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find demos: %w", err)
	}
	return demos, nil
}
