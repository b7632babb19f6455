// Package storage is the campaign catalogue: the set of campaign data files
// the generator can emit launchers for.
package storage

import (
	"context"

	"github.com/jwebster45206/doom-launchers/pkg/campaign"
)

// Storage lists campaigns.
type Storage interface {
	// ListCampaigns returns every campaign, sorted by release date with the
	// name as a tie-break.
	ListCampaigns(ctx context.Context) ([]*campaign.Campaign, error)
}
