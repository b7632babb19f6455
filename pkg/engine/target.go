package engine

import (
	"fmt"

	"github.com/jwebster45206/doom-launchers/pkg/campaign"
)

// AggregateName names the back-to-back run of every map, in demo and script
// names.
const AggregateName = "D2All"

// TargetKind selects what a launcher starts.
type TargetKind int

const (
	// TitleScreen starts the campaign without warping.
	TitleScreen TargetKind = iota
	// SingleMap warps to one mission.
	SingleMap
	// AllMaps records every map of the campaign in one run.
	AllMaps
)

// Target is where a launcher drops the player.
type Target struct {
	Kind    TargetKind
	Episode campaign.Episode
	Mission campaign.Mission
}

// MapTarget targets a single mission.
func MapTarget(e campaign.Episode, m campaign.Mission) Target {
	return Target{Kind: SingleMap, Episode: e, Mission: m}
}

// DemoName is the name demos of the target are recorded under: MAPxx, D2All,
// or empty for the title screen.
func (t Target) DemoName() string {
	switch t.Kind {
	case SingleMap:
		return fmt.Sprintf("MAP%02d", t.Mission.Level)
	case AllMaps:
		return AggregateName
	default:
		return ""
	}
}
