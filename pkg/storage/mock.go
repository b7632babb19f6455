package storage

import (
	"context"
	"sync"

	"github.com/jwebster45206/doom-launchers/pkg/campaign"
)

// MockStorage is an in-memory Storage for tests.
type MockStorage struct {
	mu        sync.RWMutex
	campaigns map[string]*campaign.Campaign
	listError error
}

var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates an empty mock storage.
func NewMockStorage() *MockStorage {
	return &MockStorage{
		campaigns: make(map[string]*campaign.Campaign),
	}
}

// AddCampaign stores c under filename.
func (m *MockStorage) AddCampaign(filename string, c *campaign.Campaign) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.campaigns[filename] = c
}

// SetListError makes ListCampaigns fail with err.
func (m *MockStorage) SetListError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listError = err
}

func (m *MockStorage) ListCampaigns(ctx context.Context) ([]*campaign.Campaign, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.listError != nil {
		return nil, m.listError
	}

	campaigns := make([]*campaign.Campaign, 0, len(m.campaigns))
	for _, c := range m.campaigns {
		campaigns = append(campaigns, c)
	}
	campaign.SortByRelease(campaigns)
	return campaigns, nil
}
