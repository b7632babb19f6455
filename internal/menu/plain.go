package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jwebster45206/doom-launchers/pkg/campaign"
)

// PlainSelector reads the choice line by line, asking again after every
// invalid answer.
type PlainSelector struct {
	in  *bufio.Scanner
	out io.Writer
}

var _ Selector = (*PlainSelector)(nil)

func NewPlainSelector(in io.Reader, out io.Writer) *PlainSelector {
	return &PlainSelector{in: bufio.NewScanner(in), out: out}
}

func (s *PlainSelector) Select(ctx context.Context, campaigns []*campaign.Campaign) ([]*campaign.Campaign, error) {
	fmt.Fprint(s.out, CampaignList(campaigns))
	fmt.Fprintln(s.out, Prompt)

	n := len(campaigns) + 1
	for s.in.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		choice, err := ParseSelection(s.in.Text(), n)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		return Chosen(campaigns, choice), nil
	}
	if err := s.in.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}
	return nil, ErrNoSelection
}
