package giveaway

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/atreus-labs/wardenbot/internal/domain"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateGiveaway(ctx context.Context, giveaway *domain.Giveaway) error {
	args := m.Called(ctx, giveaway)
	return args.Error(0)
}

func (m *MockRepository) GetGiveaway(ctx context.Context, messageID string) (*domain.Giveaway, error) {
	args := m.Called(ctx, messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Giveaway), args.Error(1)
}

func (m *MockRepository) ListActiveGiveaways(ctx context.Context, guildID string) ([]*domain.Giveaway, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Giveaway), args.Error(1)
}

func (m *MockRepository) ListDueGiveaways(ctx context.Context, now time.Time) ([]*domain.Giveaway, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Giveaway), args.Error(1)
}

func (m *MockRepository) DeactivateIfActive(ctx context.Context, messageID string) (bool, error) {
	args := m.Called(ctx, messageID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) AddEntry(ctx context.Context, entry *domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRepository) CountEntries(ctx context.Context, giveawayID string) (int, error) {
	args := m.Called(ctx, giveawayID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) ListEntrantIDs(ctx context.Context, giveawayID string) ([]string, error) {
	args := m.Called(ctx, giveawayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockMessenger
type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) SendAnnouncement(ctx context.Context, g *domain.Giveaway) (string, error) {
	args := m.Called(ctx, g)
	return args.String(0), args.Error(1)
}

func (m *MockMessenger) MarkSetupFailed(ctx context.Context, channelID, messageID string) error {
	args := m.Called(ctx, channelID, messageID)
	return args.Error(0)
}

func (m *MockMessenger) ResolveAnnouncement(ctx context.Context, channelID, messageID string) error {
	args := m.Called(ctx, channelID, messageID)
	return args.Error(0)
}

func (m *MockMessenger) EditEnded(ctx context.Context, g *domain.Giveaway, outcome EndedOutcome, winners []string) error {
	args := m.Called(ctx, g, outcome, winners)
	return args.Error(0)
}

func (m *MockMessenger) AnnounceWinners(ctx context.Context, g *domain.Giveaway, winners []string) error {
	args := m.Called(ctx, g, winners)
	return args.Error(0)
}

func (m *MockMessenger) AppendReroll(ctx context.Context, g *domain.Giveaway, winners []string) error {
	args := m.Called(ctx, g, winners)
	return args.Error(0)
}

func (m *MockMessenger) UpdateEntryCount(ctx context.Context, channelID, messageID string, count int) error {
	args := m.Called(ctx, channelID, messageID, count)
	return args.Error(0)
}

// MockRoster resolves members from a fixed map of userID to role IDs
type MockRoster struct {
	Members map[string][]string
}

func (r *MockRoster) ResolveMember(_ context.Context, _, userID string) ([]string, bool) {
	roles, ok := r.Members[userID]
	return roles, ok
}

// scriptedRand replays a fixed draw sequence, wrapping when exhausted
type scriptedRand struct {
	draws []int
	pos   int
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.draws) == 0 {
		return 0
	}
	d := r.draws[r.pos%len(r.draws)] % n
	r.pos++
	return d
}
