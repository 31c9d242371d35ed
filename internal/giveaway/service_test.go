package giveaway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/atreus-labs/wardenbot/internal/domain"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(repo *MockRepository, messenger *MockMessenger, roster *MockRoster, rng randSource) *service {
	if roster == nil {
		roster = &MockRoster{Members: map[string][]string{}}
	}
	if rng == nil {
		rng = seededRand()
	}
	// The debounce delay is long enough that no refresh fires during a test;
	// Stop cancels the pending timers.
	return newService(repo, messenger, roster, map[string]int{"booster": 3}, time.Minute, rng, func() time.Time { return testNow })
}

func activeGiveaway() *domain.Giveaway {
	return &domain.Giveaway{
		MessageID:   "msg1",
		ChannelID:   "chan1",
		GuildID:     "guild1",
		Prize:       "Steam Key",
		EndTime:     testNow.Add(time.Hour),
		WinnerCount: 1,
		HostID:      "host1",
		IsActive:    true,
		CreatedAt:   testNow,
	}
}

func validCreateParams() CreateParams {
	return CreateParams{
		GuildID:         "guild1",
		ChannelID:       "chan1",
		HostID:          "host1",
		Prize:           "Steam Key",
		DurationMinutes: 60,
		WinnerCount:     1,
	}
}

func TestCreate_Success(t *testing.T) {
	repo := new(MockRepository)
	messenger := new(MockMessenger)
	svc := newTestService(repo, messenger, nil, nil)

	messenger.On("SendAnnouncement", mock.Anything, mock.Anything).Return("msg1", nil)
	repo.On("CreateGiveaway", mock.Anything, mock.Anything).Return(nil)

	g, err := svc.Create(context.Background(), validCreateParams())

	assert.NoError(t, err)
	assert.Equal(t, "msg1", g.MessageID)
	assert.True(t, g.IsActive)
	assert.Equal(t, 1, g.WinnerCount)
	assert.Equal(t, testNow.Add(60*time.Minute), g.EndTime)
	repo.AssertExpectations(t)
	messenger.AssertExpectations(t)
}

func TestCreate_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateParams)
	}{
		{name: "zero duration", mutate: func(p *CreateParams) { p.DurationMinutes = 0 }},
		{name: "duration over two weeks", mutate: func(p *CreateParams) { p.DurationMinutes = 20161 }},
		{name: "zero winners", mutate: func(p *CreateParams) { p.WinnerCount = 0 }},
		{name: "too many winners", mutate: func(p *CreateParams) { p.WinnerCount = 51 }},
		{name: "empty prize", mutate: func(p *CreateParams) { p.Prize = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			messenger := new(MockMessenger)
			svc := newTestService(repo, messenger, nil, nil)

			params := validCreateParams()
			tt.mutate(&params)

			g, err := svc.Create(context.Background(), params)

			assert.Error(t, err)
			assert.Nil(t, g)
			assert.Contains(t, err.Error(), ErrContextInvalidCreateParams)
			// Rejection must happen before any side effect.
			messenger.AssertNotCalled(t, "SendAnnouncement", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "CreateGiveaway", mock.Anything, mock.Anything)
		})
	}
}

func TestCreate_RecordWriteFailureDemotesAnnouncement(t *testing.T) {
	repo := new(MockRepository)
	messenger := new(MockMessenger)
	svc := newTestService(repo, messenger, nil, nil)

	messenger.On("SendAnnouncement", mock.Anything, mock.Anything).Return("msg1", nil)
	repo.On("CreateGiveaway", mock.Anything, mock.Anything).Return(errors.New("connection reset"))
	messenger.On("MarkSetupFailed", mock.Anything, "chan1", "msg1").Return(nil)

	g, err := svc.Create(context.Background(), validCreateParams())

	assert.Error(t, err)
	assert.Nil(t, g)
	assert.Contains(t, err.Error(), ErrContextFailedToCreateRecord)
	messenger.AssertExpectations(t)
}

func TestAdmitEntry_Success(t *testing.T) {
	repo := new(MockRepository)
	messenger := new(MockMessenger)
	svc := newTestService(repo, messenger, nil, nil)

	repo.On("GetGiveaway", mock.Anything, "msg1").Return(activeGiveaway(), nil)
	repo.On("AddEntry", mock.Anything, mock.MatchedBy(func(e *domain.Entry) bool {
		return e.GiveawayID == "msg1" && e.UserID == "u2"
	})).Return(nil)

	adm := svc.AdmitEntry(context.Background(), "msg1", "u2")

	assert.True(t, adm.Accepted)
	assert.Empty(t, adm.Reason)
	svc.Stop()
}

func TestAdmitEntry_Duplicate(t *testing.T) {
	repo := new(MockRepository)
	messenger := new(MockMessenger)
	svc := newTestService(repo, messenger, nil, nil)

	repo.On("GetGiveaway", mock.Anything, "msg1").Return(activeGiveaway(), nil)
	repo.On("AddEntry", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("AddEntry", mock.Anything, mock.Anything).Return(domain.ErrAlreadyEntered)

	first := svc.AdmitEntry(context.Background(), "msg1", "u2")
	second := svc.AdmitEntry(context.Background(), "msg1", "u2")

	assert.True(t, first.Accepted)
	assert.False(t, second.Accepted)
	assert.Equal(t, ReasonAlreadyEntered, second.Reason)
	svc.Stop()
}

func TestAdmitEntry_EndedOrMissing(t *testing.T) {
	ended := activeGiveaway()
	ended.IsActive = false

	tests := []struct {
		name     string
		giveaway *domain.Giveaway
	}{
		{name: "inactive giveaway", giveaway: ended},
		{name: "missing giveaway", giveaway: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			messenger := new(MockMessenger)
			svc := newTestService(repo, messenger, nil, nil)

			repo.On("GetGiveaway", mock.Anything, "msg1").Return(tt.giveaway, nil)

			adm := svc.AdmitEntry(context.Background(), "msg1", "u2")

			assert.False(t, adm.Accepted)
			assert.Equal(t, ReasonEnded, adm.Reason)
			repo.AssertNotCalled(t, "AddEntry", mock.Anything, mock.Anything)
		})
	}
}

func TestAdmitEntry_TransientErrors(t *testing.T) {
	t.Run("lookup failure", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockMessenger), nil, nil)
		repo.On("GetGiveaway", mock.Anything, "msg1").Return(nil, errors.New("timeout"))

		adm := svc.AdmitEntry(context.Background(), "msg1", "u2")

		assert.False(t, adm.Accepted)
		assert.Equal(t, ReasonTransient, adm.Reason)
	})

	t.Run("insert failure", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockMessenger), nil, nil)
		repo.On("GetGiveaway", mock.Anything, "msg1").Return(activeGiveaway(), nil)
		repo.On("AddEntry", mock.Anything, mock.Anything).Return(errors.New("timeout"))

		adm := svc.AdmitEntry(context.Background(), "msg1", "u2")

		assert.False(t, adm.Accepted)
		assert.Equal(t, ReasonTransient, adm.Reason)
	})
}

func TestFinalize_AlreadyFinalized(t *testing.T) {
	repo := new(MockRepository)
	messenger := new(MockMessenger)
	svc := newTestService(repo, messenger, nil, nil)

	repo.On("DeactivateIfActive", mock.Anything, "msg1").Return(false, nil)

	svc.Finalize(context.Background(), activeGiveaway())

	// Losing the flip must stop everything downstream.
	repo.AssertNotCalled(t, "ListEntrantIDs", mock.Anything, mock.Anything)
	messenger.AssertNotCalled(t, "EditEnded", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	messenger.AssertNotCalled(t, "AnnounceWinners", mock.Anything, mock.Anything, mock.Anything)
}

func TestFinalize_SecondCallIsNoOp(t *testing.T) {
	repo := new(MockRepository)
	messenger := new(MockMessenger)
	roster := &MockRoster{Members: map[string][]string{"u2": {}}}
	svc := newTestService(repo, messenger, roster, nil)
	g := activeGiveaway()

	repo.On("DeactivateIfActive", mock.Anything, "msg1").Return(true, nil).Once()
	repo.On("DeactivateIfActive", mock.Anything, "msg1").Return(false, nil)
	messenger.On("ResolveAnnouncement", mock.Anything, "chan1", "msg1").Return(nil)
	repo.On("ListEntrantIDs", mock.Anything, "msg1").Return([]string{"u2"}, nil)
	messenger.On("EditEnded", mock.Anything, g, OutcomeWinners, []string{"u2"}).Return(nil)
	messenger.On("AnnounceWinners", mock.Anything, g, []string{"u2"}).Return(nil)

	svc.Finalize(context.Background(), g)
	svc.Finalize(context.Background(), g)

	messenger.AssertNumberOfCalls(t, "EditEnded", 1)
	messenger.AssertNumberOfCalls(t, "AnnounceWinners", 1)
}

func TestFinalize_NoEntries(t *testing.T) {
	repo := new(MockRepository)
	messenger := new(MockMessenger)
	svc := newTestService(repo, messenger, nil, nil)
	g := activeGiveaway()

	repo.On("DeactivateIfActive", mock.Anything, "msg1").Return(true, nil)
	messenger.On("ResolveAnnouncement", mock.Anything, "chan1", "msg1").Return(nil)
	repo.On("ListEntrantIDs", mock.Anything, "msg1").Return([]string{}, nil)
	messenger.On("EditEnded", mock.Anything, g, OutcomeNoEntries, []string(nil)).Return(nil)

	svc.Finalize(context.Background(), g)

	messenger.AssertExpectations(t)
	messenger.AssertNotCalled(t, "AnnounceWinners", mock.Anything, mock.Anything, mock.Anything)
}

func TestFinalize_EvictsEntryCounter(t *testing.T) {
	repo := new(MockRepository)
	messenger := new(MockMessenger)
	svc := newTestService(repo, messenger, nil, nil)
	g := activeGiveaway()

	repo.On("DeactivateIfActive", mock.Anything, "msg1").Return(true, nil)
	messenger.On("ResolveAnnouncement", mock.Anything, "chan1", "msg1").Return(nil)
	repo.On("ListEntrantIDs", mock.Anything, "msg1").Return([]string{}, nil)
	messenger.On("EditEnded", mock.Anything, g, OutcomeNoEntries, []string(nil)).Return(nil)

	svc.refresher.Schedule(g)
	svc.Finalize(context.Background(), g)

	svc.refresher.mu.Lock()
	_, pending := svc.refresher.pending["msg1"]
	_, cached := svc.refresher.lastShown["msg1"]
	svc.refresher.mu.Unlock()
	assert.False(t, pending)
	assert.False(t, cached)
}

func TestFinalize_AllEntrantsLeftGuild(t *testing.T) {
	repo := new(MockRepository)
	messenger := new(MockMessenger)
	roster := &MockRoster{Members: map[string][]string{}}
	svc := newTestService(repo, messenger, roster, nil)
	g := activeGiveaway()

	repo.On("DeactivateIfActive", mock.Anything, "msg1").Return(true, nil)
	messenger.On("ResolveAnnouncement", mock.Anything, "chan1", "msg1").Return(nil)
	repo.On("ListEntrantIDs", mock.Anything, "msg1").Return([]string{"gone1", "gone2"}, nil)
	messenger.On("EditEnded", mock.Anything, g, OutcomeNoEligible, []string(nil)).Return(nil)

	svc.Finalize(context.Background(), g)

	messenger.AssertExpectations(t)
	messenger.AssertNotCalled(t, "AnnounceWinners", mock.Anything, mock.Anything, mock.Anything)
}

func TestFinalize_PicksDistinctWinners(t *testing.T) {
	repo := new(MockRepository)
	messenger := new(MockMessenger)
	roster := &MockRoster{Members: map[string][]string{
		"u2": {},
		"u3": {},
		"u4": {},
	}}
	svc := newTestService(repo, messenger, roster, nil)
	g := activeGiveaway()
	g.WinnerCount = 2

	repo.On("DeactivateIfActive", mock.Anything, "msg1").Return(true, nil)
	messenger.On("ResolveAnnouncement", mock.Anything, "chan1", "msg1").Return(nil)
	repo.On("ListEntrantIDs", mock.Anything, "msg1").Return([]string{"u2", "u3", "u4"}, nil)

	var edited []string
	messenger.On("EditEnded", mock.Anything, g, OutcomeWinners, mock.Anything).Run(func(args mock.Arguments) {
		edited = args.Get(3).([]string)
	}).Return(nil)
	messenger.On("AnnounceWinners", mock.Anything, g, mock.Anything).Return(nil)

	svc.Finalize(context.Background(), g)

	assert.Len(t, edited, 2)
	assert.NotEqual(t, edited[0], edited[1])
	for _, id := range edited {
		assert.Contains(t, []string{"u2", "u3", "u4"}, id)
	}
}

func TestFinalize_DepartedEntrantCannotWin(t *testing.T) {
	repo := new(MockRepository)
	messenger := new(MockMessenger)
	roster := &MockRoster{Members: map[string][]string{"u3": {}}}
	svc := newTestService(repo, messenger, roster, nil)
	g := activeGiveaway()

	repo.On("DeactivateIfActive", mock.Anything, "msg1").Return(true, nil)
	messenger.On("ResolveAnnouncement", mock.Anything, "chan1", "msg1").Return(nil)
	repo.On("ListEntrantIDs", mock.Anything, "msg1").Return([]string{"gone", "u3"}, nil)
	messenger.On("EditEnded", mock.Anything, g, OutcomeWinners, []string{"u3"}).Return(nil)
	messenger.On("AnnounceWinners", mock.Anything, g, []string{"u3"}).Return(nil)

	svc.Finalize(context.Background(), g)

	messenger.AssertExpectations(t)
}

func TestFinalize_AnnouncementUnreachable(t *testing.T) {
	repo := new(MockRepository)
	messenger := new(MockMessenger)
	svc := newTestService(repo, messenger, nil, nil)
	g := activeGiveaway()

	repo.On("DeactivateIfActive", mock.Anything, "msg1").Return(true, nil)
	messenger.On("ResolveAnnouncement", mock.Anything, "chan1", "msg1").Return(errors.New("message not found"))

	svc.Finalize(context.Background(), g)

	// Terminal for this pass: the giveaway stays deactivated, nothing else runs.
	repo.AssertNotCalled(t, "ListEntrantIDs", mock.Anything, mock.Anything)
	messenger.AssertNotCalled(t, "EditEnded", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFinalize_CongratsFailureDoesNotUndoFinalization(t *testing.T) {
	repo := new(MockRepository)
	messenger := new(MockMessenger)
	roster := &MockRoster{Members: map[string][]string{"u2": {}}}
	svc := newTestService(repo, messenger, roster, nil)
	g := activeGiveaway()

	repo.On("DeactivateIfActive", mock.Anything, "msg1").Return(true, nil)
	messenger.On("ResolveAnnouncement", mock.Anything, "chan1", "msg1").Return(nil)
	repo.On("ListEntrantIDs", mock.Anything, "msg1").Return([]string{"u2"}, nil)
	messenger.On("EditEnded", mock.Anything, g, OutcomeWinners, []string{"u2"}).Return(nil)
	messenger.On("AnnounceWinners", mock.Anything, g, []string{"u2"}).Return(errors.New("rate limited"))

	svc.Finalize(context.Background(), g)

	messenger.AssertExpectations(t)
}

func TestFinalizeDue(t *testing.T) {
	repo := new(MockRepository)
	messenger := new(MockMessenger)
	roster := &MockRoster{Members: map[string][]string{"u2": {}}}
	svc := newTestService(repo, messenger, roster, nil)

	g1 := activeGiveaway()
	g2 := activeGiveaway()
	g2.MessageID = "msg2"

	repo.On("ListDueGiveaways", mock.Anything, testNow).Return([]*domain.Giveaway{g1, g2}, nil)
	repo.On("DeactivateIfActive", mock.Anything, "msg1").Return(true, nil)
	// A transient failure on one giveaway must not stop the next.
	repo.On("DeactivateIfActive", mock.Anything, "msg2").Return(false, errors.New("timeout"))
	messenger.On("ResolveAnnouncement", mock.Anything, "chan1", "msg1").Return(nil)
	repo.On("ListEntrantIDs", mock.Anything, "msg1").Return([]string{"u2"}, nil)
	messenger.On("EditEnded", mock.Anything, g1, OutcomeWinners, []string{"u2"}).Return(nil)
	messenger.On("AnnounceWinners", mock.Anything, g1, []string{"u2"}).Return(nil)

	err := svc.FinalizeDue(context.Background())

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestFinalizeDue_ListFailure(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, new(MockMessenger), nil, nil)

	repo.On("ListDueGiveaways", mock.Anything, testNow).Return(nil, errors.New("timeout"))

	err := svc.FinalizeDue(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextFailedToListDue)
}

func TestReroll_RejectsActiveGiveaway(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, new(MockMessenger), nil, nil)

	repo.On("GetGiveaway", mock.Anything, "msg1").Return(activeGiveaway(), nil)

	winners, err := svc.Reroll(context.Background(), "msg1", 1)

	assert.ErrorIs(t, err, domain.ErrGiveawayStillActive)
	assert.Nil(t, winners)
}

func TestReroll_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, new(MockMessenger), nil, nil)

	repo.On("GetGiveaway", mock.Anything, "msg1").Return(nil, nil)

	_, err := svc.Reroll(context.Background(), "msg1", 1)

	assert.ErrorIs(t, err, domain.ErrGiveawayNotFound)
}

func TestReroll_AppendsDistinctField(t *testing.T) {
	repo := new(MockRepository)
	messenger := new(MockMessenger)
	roster := &MockRoster{Members: map[string][]string{"u2": {}, "u3": {}}}
	svc := newTestService(repo, messenger, roster, nil)

	g := activeGiveaway()
	g.IsActive = false

	repo.On("GetGiveaway", mock.Anything, "msg1").Return(g, nil)
	repo.On("ListEntrantIDs", mock.Anything, "msg1").Return([]string{"u2", "u3"}, nil)
	messenger.On("AppendReroll", mock.Anything, g, mock.Anything).Return(nil)

	winners, err := svc.Reroll(context.Background(), "msg1", 1)

	assert.NoError(t, err)
	assert.Len(t, winners, 1)
	messenger.AssertExpectations(t)
	// The original announcement is appended to, never rewritten.
	messenger.AssertNotCalled(t, "EditEnded", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReroll_ClampsCount(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{name: "zero clamps to one", requested: 0, want: 1},
		{name: "negative clamps to one", requested: -3, want: 1},
		{name: "over pool clamps to pool", requested: 10, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			messenger := new(MockMessenger)
			roster := &MockRoster{Members: map[string][]string{"u2": {}, "u3": {}}}
			svc := newTestService(repo, messenger, roster, nil)

			g := activeGiveaway()
			g.IsActive = false

			repo.On("GetGiveaway", mock.Anything, "msg1").Return(g, nil)
			repo.On("ListEntrantIDs", mock.Anything, "msg1").Return([]string{"u2", "u3"}, nil)
			messenger.On("AppendReroll", mock.Anything, g, mock.Anything).Return(nil)

			winners, err := svc.Reroll(context.Background(), "msg1", tt.requested)

			assert.NoError(t, err)
			assert.Len(t, winners, tt.want)
		})
	}
}

func TestReroll_NoEligibleEntrants(t *testing.T) {
	repo := new(MockRepository)
	messenger := new(MockMessenger)
	roster := &MockRoster{Members: map[string][]string{}}
	svc := newTestService(repo, messenger, roster, nil)

	g := activeGiveaway()
	g.IsActive = false

	repo.On("GetGiveaway", mock.Anything, "msg1").Return(g, nil)
	repo.On("ListEntrantIDs", mock.Anything, "msg1").Return([]string{"gone"}, nil)

	_, err := svc.Reroll(context.Background(), "msg1", 1)

	assert.ErrorIs(t, err, domain.ErrNoEligibleEntrants)
	messenger.AssertNotCalled(t, "AppendReroll", mock.Anything, mock.Anything, mock.Anything)
}

func TestReroll_WeightsReflectCurrentRoles(t *testing.T) {
	repo := new(MockRepository)
	messenger := new(MockMessenger)
	// u2 holds the boosted role now, regardless of roles at entry time.
	roster := &MockRoster{Members: map[string][]string{"u2": {"booster"}, "u3": {}}}
	rng := &scriptedRand{draws: []int{0}}
	svc := newTestService(repo, messenger, roster, rng)

	g := activeGiveaway()
	g.IsActive = false

	repo.On("GetGiveaway", mock.Anything, "msg1").Return(g, nil)
	repo.On("ListEntrantIDs", mock.Anything, "msg1").Return([]string{"u2", "u3"}, nil)
	messenger.On("AppendReroll", mock.Anything, g, []string{"u2"}).Return(nil)

	winners, err := svc.Reroll(context.Background(), "msg1", 1)

	assert.NoError(t, err)
	assert.Equal(t, 3, winners[0].Weight)
}

func TestForceFinalize_WrongGuild(t *testing.T) {
	repo := new(MockRepository)
	messenger := new(MockMessenger)
	svc := newTestService(repo, messenger, nil, nil)

	repo.On("GetGiveaway", mock.Anything, "msg1").Return(activeGiveaway(), nil)

	err := svc.ForceFinalize(context.Background(), "other-guild", "msg1")

	assert.ErrorIs(t, err, domain.ErrWrongGuild)
	repo.AssertNotCalled(t, "DeactivateIfActive", mock.Anything, mock.Anything)
}

func TestForceFinalize_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, new(MockMessenger), nil, nil)

	repo.On("GetGiveaway", mock.Anything, "msg1").Return(nil, nil)

	err := svc.ForceFinalize(context.Background(), "guild1", "msg1")

	assert.ErrorIs(t, err, domain.ErrGiveawayNotFound)
}

func TestForceFinalize_RunsFinalizeSynchronously(t *testing.T) {
	repo := new(MockRepository)
	messenger := new(MockMessenger)
	roster := &MockRoster{Members: map[string][]string{"u2": {}}}
	svc := newTestService(repo, messenger, roster, nil)
	g := activeGiveaway()

	repo.On("GetGiveaway", mock.Anything, "msg1").Return(g, nil)
	repo.On("DeactivateIfActive", mock.Anything, "msg1").Return(true, nil)
	messenger.On("ResolveAnnouncement", mock.Anything, "chan1", "msg1").Return(nil)
	repo.On("ListEntrantIDs", mock.Anything, "msg1").Return([]string{"u2"}, nil)
	messenger.On("EditEnded", mock.Anything, g, OutcomeWinners, []string{"u2"}).Return(nil)
	messenger.On("AnnounceWinners", mock.Anything, g, []string{"u2"}).Return(nil)

	err := svc.ForceFinalize(context.Background(), "guild1", "msg1")

	assert.NoError(t, err)
	messenger.AssertExpectations(t)
}

func TestListActive_ChannelFilter(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, new(MockMessenger), nil, nil)

	g1 := activeGiveaway()
	g2 := activeGiveaway()
	g2.MessageID = "msg2"
	g2.ChannelID = "chan2"

	repo.On("ListActiveGiveaways", mock.Anything, "guild1").Return([]*domain.Giveaway{g1, g2}, nil)

	all, err := svc.ListActive(context.Background(), "guild1", "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.ListActive(context.Background(), "guild1", "chan2")
	assert.NoError(t, err)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "msg2", filtered[0].MessageID)
}
