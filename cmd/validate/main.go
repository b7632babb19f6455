package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/doom-launchers/pkg/campaign"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <campaign.csv>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	validator := &CampaignValidator{}

	c, err := validator.validateFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	printTree(os.Stdout, c)
	fmt.Println("Campaign file is valid!")
}

type CampaignValidator struct {
	errors []string
}

func (v *CampaignValidator) validateFile(filename string) (*campaign.Campaign, error) {
	fmt.Printf("Validating %s...\n", filename)

	if !strings.EqualFold(filepath.Ext(filename), ".csv") {
		return nil, fmt.Errorf("campaign file must have .csv extension: %s", filepath.Base(filename))
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	defer func() {
		_ = f.Close() // read-only
	}()

	records, err := campaign.ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	v.errors = nil
	v.validateRecords(records)

	c, err := campaign.Group(records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	v.validateCampaign(c)

	if len(v.errors) > 0 {
		return nil, fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}
	return c, nil
}

// validateRecords checks the rows against each other. Row numbers count the
// header as line 1.
func (v *CampaignValidator) validateRecords(records []campaign.Record) {
	first := records[0]
	if !validDateRegex.MatchString(first.ReleaseDate) {
		v.addError(fmt.Sprintf("release_date '%s' should be YYYY-MM-DD", first.ReleaseDate))
	}

	levels := make(map[int]int)
	for i, rec := range records {
		line := i + 2

		for _, f := range []struct{ column, got, want string }{
			{campaign.ColGameName, rec.GameName, first.GameName},
			{campaign.ColIWAD, rec.IWAD, first.IWAD},
			{campaign.ColComplevel, rec.Complevel, first.Complevel},
			{campaign.ColReleaseDate, rec.ReleaseDate, first.ReleaseDate},
		} {
			if f.got != f.want {
				v.addError(fmt.Sprintf("line %d: %s '%s' differs from first row '%s'", line, f.column, f.got, f.want))
			}
		}

		if i > 0 {
			prev := records[i-1].EpisodeNumber
			if rec.EpisodeNumber != prev && rec.EpisodeNumber != prev+1 {
				v.addError(fmt.Sprintf("line %d: episode_number %d does not follow %d; episodes will be split", line, rec.EpisodeNumber, prev))
			}
		}

		if seen, ok := levels[rec.LevelNumber]; ok {
			v.addError(fmt.Sprintf("line %d: level_number %d already used on line %d", line, rec.LevelNumber, seen))
		} else {
			levels[rec.LevelNumber] = line
		}
	}
}

func (v *CampaignValidator) validateCampaign(c *campaign.Campaign) {
	if _, ok := c.FixedWarp(); !ok {
		if _, err := c.WarpScheme(); err != nil {
			v.addError(err.Error())
		}
	}

	for _, e := range c.Episodes {
		missions := make(map[int]bool, len(e.Missions))
		for _, m := range e.Missions {
			if missions[m.Number] {
				v.addError(fmt.Sprintf("episode %d '%s' has mission_number %d more than once", e.Number, e.Name, m.Number))
			}
			missions[m.Number] = true

			if m.PathName() == "" {
				v.addError(fmt.Sprintf("episode %d mission %d has no usable name", e.Number, m.Number))
			}
		}
	}
}

func (v *CampaignValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func printTree(w io.Writer, c *campaign.Campaign) {
	scheme := "fixed warp"
	if s, err := c.WarpScheme(); err == nil {
		scheme = s.String() + " warp"
	}
	fmt.Fprintf(w, "%s (%s, %s, complevel %s)\n", c.DirectoryName(), c.IWAD, scheme, c.Complevel)

	for _, e := range c.Episodes {
		fmt.Fprintf(w, "  E%d %s\n", c.DisplayEpisodeNumber(e), e.Name)
		for _, m := range e.Missions {
			secret := ""
			if m.IsSecret {
				secret = " [secret]"
			}
			fmt.Fprintf(w, "    MAP%02d E%dM%d %s (%s)%s\n", m.Level, c.DisplayEpisodeNumber(e), m.Number, m.Name, m.WAD, secret)
		}
	}
	fmt.Fprintf(w, "%d episodes, %d missions\n", len(c.Episodes), c.MissionCount())
}
