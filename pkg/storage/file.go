package storage

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jwebster45206/doom-launchers/pkg/campaign"
)

// FileStorage reads campaign CSV files from a data directory tree.
type FileStorage struct {
	dataDir string
	logger  *slog.Logger
}

var _ Storage = (*FileStorage)(nil)

// NewFileStorage returns a FileStorage rooted at dataDir.
func NewFileStorage(dataDir string, logger *slog.Logger) *FileStorage {
	return &FileStorage{dataDir: dataDir, logger: logger}
}

// ListCampaigns loads every *.csv under the data dir. A file that fails to
// load fails the whole listing.
func (s *FileStorage) ListCampaigns(ctx context.Context) ([]*campaign.Campaign, error) {
	var campaigns []*campaign.Campaign

	err := filepath.WalkDir(s.dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".csv") {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		c, err := campaign.LoadFile(path)
		if err != nil {
			return err
		}
		s.logger.Debug("Loaded campaign", "path", path, "name", c.Name, "missions", c.MissionCount())
		campaigns = append(campaigns, c)
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to load campaigns", "data_dir", s.dataDir, "error", err)
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	campaign.SortByRelease(campaigns)
	return campaigns, nil
}
