// Package menu prints the generator's banner and engine list and asks which
// campaigns to generate launchers for.
package menu

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/doom-launchers/pkg/campaign"
	"github.com/jwebster45206/doom-launchers/pkg/engine"
)

const (
	Title       = "Doom Batch File Generator"
	description = "This utility will generate batch files for each mission in a game. " +
		"They are intended to be used as a quick way to pistol start any given mission."
)

// ErrNoSelection is returned when input ends before a valid selection.
var ErrNoSelection = errors.New("no campaign selected")

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // red
			Bold(true)

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	headingStyle = lipgloss.NewStyle().
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("196")).
			Bold(true)
)

// Banner renders the title block with the description wrapped to width.
func Banner(width int) string {
	rule := ruleStyle.Render(strings.Repeat("=", len(Title)))

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(titleStyle.Render(Title) + "\n")
	b.WriteString(rule + "\n")
	b.WriteString(wordwrap.String(description, width) + "\n")
	return b.String()
}

// EngineList renders the detected source ports.
func EngineList(profiles []*engine.Profile) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Found the following source ports:") + "\n")
	for _, p := range profiles {
		b.WriteString(p.String() + "\n")
	}
	return b.String()
}

// Options are the numbered choices offered for campaigns, ending with All.
func Options(campaigns []*campaign.Campaign) []string {
	options := make([]string, 0, len(campaigns)+1)
	for _, c := range campaigns {
		options = append(options, c.ReleaseDate+" -- "+c.Name)
	}
	return append(options, "All")
}

// CampaignList renders the numbered campaign choices.
func CampaignList(campaigns []*campaign.Campaign) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("The following campaigns were found:") + "\n")
	for i, option := range Options(campaigns) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, option)
	}
	return b.String()
}

// Prompt asks for a selection.
const Prompt = "Please select the campaign to generate batch files for:"

// RangeError reports a selection outside 1..Max.
type RangeError struct {
	Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("Please enter a value between 1 and %d.", e.Max)
}

// ParseSelection parses a 1-based choice among n options.
func ParseSelection(input string, n int) (int, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || choice < 1 || choice > n {
		return 0, &RangeError{Max: n}
	}
	return choice, nil
}

// Chosen returns the campaigns a 1-based choice stands for. The last choice
// is every campaign.
func Chosen(campaigns []*campaign.Campaign, choice int) []*campaign.Campaign {
	if choice == len(campaigns)+1 {
		return campaigns
	}
	return campaigns[choice-1 : choice]
}

// Selector asks the user which campaigns to generate.
type Selector interface {
	Select(ctx context.Context, campaigns []*campaign.Campaign) ([]*campaign.Campaign, error)
}
