package giveaway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/atreus-labs/wardenbot/internal/domain"
	"github.com/atreus-labs/wardenbot/internal/logger"
	"github.com/atreus-labs/wardenbot/internal/metrics"
	"github.com/atreus-labs/wardenbot/internal/repository"
)

// Service defines the interface for giveaway lifecycle operations
type Service interface {
	Create(ctx context.Context, params CreateParams) (*domain.Giveaway, error)
	AdmitEntry(ctx context.Context, giveawayID, userID string) Admission

	// Finalize closes a giveaway exactly once. It never returns an error:
	// it is invoked from an unattended periodic loop, so failures past the
	// atomic guard are logged and swallowed.
	Finalize(ctx context.Context, g *domain.Giveaway)

	// FinalizeDue finalizes every giveaway whose end time has passed.
	FinalizeDue(ctx context.Context) error

	Reroll(ctx context.Context, giveawayID string, count int) ([]domain.Entrant, error)
	ForceFinalize(ctx context.Context, guildID, messageID string) error
	ListActive(ctx context.Context, guildID, channelID string) ([]*domain.Giveaway, error)
	CountEntries(ctx context.Context, giveawayID string) (int, error)

	// Stop cancels pending entry-count refreshes. In-flight refreshes are
	// allowed to complete.
	Stop()
}

// EndedOutcome describes how a finalized giveaway concluded, so the
// messaging layer can render the matching ended state.
type EndedOutcome string

const (
	OutcomeWinners    EndedOutcome = "winners"
	OutcomeNoEntries  EndedOutcome = "no_entries"
	OutcomeNoEligible EndedOutcome = "no_eligible"
)

// Messenger is the outbound announcement surface. Implementations own the
// chat-platform specifics; the service only dictates what each message must
// convey.
type Messenger interface {
	// SendAnnouncement posts the live giveaway announcement and returns the
	// new message's ID, which becomes the giveaway's primary key.
	SendAnnouncement(ctx context.Context, g *domain.Giveaway) (string, error)

	// MarkSetupFailed edits an already-sent announcement into a visibly
	// failed state after the backing record could not be written.
	MarkSetupFailed(ctx context.Context, channelID, messageID string) error

	// ResolveAnnouncement verifies the announcement message still exists
	// and is reachable.
	ResolveAnnouncement(ctx context.Context, channelID, messageID string) error

	// EditEnded rewrites the announcement into its ended state. winners is
	// nil unless outcome is OutcomeWinners.
	EditEnded(ctx context.Context, g *domain.Giveaway, outcome EndedOutcome, winners []string) error

	// AnnounceWinners posts the congratulatory reply under the announcement.
	AnnounceWinners(ctx context.Context, g *domain.Giveaway, winners []string) error

	// AppendReroll adds a rerolled-winners field to the ended announcement,
	// preserving the original winners field.
	AppendReroll(ctx context.Context, g *domain.Giveaway, winners []string) error

	// UpdateEntryCount refreshes the visible entry counter on a live
	// announcement.
	UpdateEntryCount(ctx context.Context, channelID, messageID string, count int) error
}

// Roster resolves entrant IDs to current guild members
type Roster interface {
	// ResolveMember returns the role IDs a member currently holds, or
	// ok=false if the user is no longer in the guild.
	ResolveMember(ctx context.Context, guildID, userID string) (roleIDs []string, ok bool)
}

// CreateParams carries validated input for starting a giveaway. The caps on
// duration and winner count bound downstream load at finalization time.
type CreateParams struct {
	GuildID         string `validate:"required"`
	ChannelID       string `validate:"required"`
	HostID          string `validate:"required"`
	Prize           string `validate:"required,max=256"`
	DurationMinutes int    `validate:"required,min=1,max=20160"`
	WinnerCount     int    `validate:"required,min=1,max=50"`
}

// Admission is the outcome of one entry attempt. Reason is set only when
// Accepted is false.
type Admission struct {
	Accepted bool
	Reason   string
}

type service struct {
	repo        repository.Giveaway
	messenger   Messenger
	roster      Roster
	roleWeights map[string]int
	validate    *validator.Validate
	rng         randSource
	now         func() time.Time
	refresher   *refresher
}

// NewService creates a new giveaway service. roleWeights maps role IDs to
// their configured bonus selection weight.
func NewService(repo repository.Giveaway, messenger Messenger, roster Roster, roleWeights map[string]int, refreshDelay time.Duration) Service {
	return newService(repo, messenger, roster, roleWeights, refreshDelay, systemRand{}, time.Now)
}

func newService(repo repository.Giveaway, messenger Messenger, roster Roster, roleWeights map[string]int, refreshDelay time.Duration, rng randSource, now func() time.Time) *service {
	return &service{
		repo:        repo,
		messenger:   messenger,
		roster:      roster,
		roleWeights: roleWeights,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		rng:         rng,
		now:         now,
		refresher:   newRefresher(repo, messenger, refreshDelay),
	}
}

// Create validates params, announces the giveaway, then persists the record
// keyed by the announcement message ID. The announcement goes out first so
// the primary key is known before the write; if the write then fails, the
// live-looking announcement is edited into a failed state on a best-effort
// basis.
func (s *service) Create(ctx context.Context, params CreateParams) (*domain.Giveaway, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateCalled, "guild_id", params.GuildID, "prize", params.Prize, "winner_count", params.WinnerCount, "duration_minutes", params.DurationMinutes)

	if err := s.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextInvalidCreateParams, err)
	}

	now := s.now()
	g := &domain.Giveaway{
		ChannelID:   params.ChannelID,
		GuildID:     params.GuildID,
		Prize:       params.Prize,
		EndTime:     now.Add(time.Duration(params.DurationMinutes) * time.Minute),
		WinnerCount: params.WinnerCount,
		HostID:      params.HostID,
		IsActive:    true,
		CreatedAt:   now,
	}

	messageID, err := s.messenger.SendAnnouncement(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToAnnounce, err)
	}
	g.MessageID = messageID

	if err := s.repo.CreateGiveaway(ctx, g); err != nil {
		// The announcement is already live. Demote it so users cannot keep
		// entering a giveaway with no backing record.
		if editErr := s.messenger.MarkSetupFailed(ctx, g.ChannelID, messageID); editErr != nil {
			log.Error(LogMsgSetupFailedEditFailed, "error", editErr, "channel_id", g.ChannelID, "message_id", messageID)
		}
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateRecord, err)
	}

	return g, nil
}

// AdmitEntry records one user's entry. The storage uniqueness constraint is
// the sole duplicate detector; no in-memory entrant set is consulted, so
// admission stays correct across concurrent replicas.
func (s *service) AdmitEntry(ctx context.Context, giveawayID, userID string) Admission {
	log := logger.FromContext(ctx)

	g, err := s.repo.GetGiveaway(ctx, giveawayID)
	if err != nil {
		log.Error(LogMsgAdmitLookupFailed, "error", err, "message_id", giveawayID)
		return Admission{Reason: ReasonTransient}
	}
	if g == nil || !g.IsActive {
		return Admission{Reason: ReasonEnded}
	}

	entry := &domain.Entry{GiveawayID: giveawayID, UserID: userID, CreatedAt: s.now()}
	if err := s.repo.AddEntry(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrAlreadyEntered) {
			return Admission{Reason: ReasonAlreadyEntered}
		}
		log.Error(LogMsgAddEntryFailed, "error", err, "message_id", giveawayID, "user_id", userID)
		return Admission{Reason: ReasonTransient}
	}

	s.refresher.Schedule(g)
	return Admission{Accepted: true}
}

// Finalize closes the giveaway, draws winners, and rewrites the
// announcement. The conditional deactivation up front makes concurrent
// calls (a due-check tick overlapping a manual force-end) safe: only the
// caller that wins the flip proceeds.
func (s *service) Finalize(ctx context.Context, g *domain.Giveaway) {
	log := logger.FromContext(ctx)

	flipped, err := s.repo.DeactivateIfActive(ctx, g.MessageID)
	if err != nil {
		log.Error(ErrContextFailedToDeactivate, "error", err, "guild_id", g.GuildID, "message_id", g.MessageID)
		return
	}
	if !flipped {
		log.Info(LogMsgAlreadyFinalized, "message_id", g.MessageID)
		return
	}
	// No more admissions can land, so the entry counter is frozen.
	s.refresher.Forget(g.MessageID)

	if err := s.messenger.ResolveAnnouncement(ctx, g.ChannelID, g.MessageID); err != nil {
		log.Error(LogMsgAnnouncementUnreachable, "error", err, "guild_id", g.GuildID, "channel_id", g.ChannelID, "message_id", g.MessageID)
		return
	}

	entrantIDs, err := s.repo.ListEntrantIDs(ctx, g.MessageID)
	if err != nil {
		log.Error(LogMsgListEntrantsFailed, "error", err, "guild_id", g.GuildID, "message_id", g.MessageID)
		return
	}
	if len(entrantIDs) == 0 {
		s.editEnded(ctx, g, OutcomeNoEntries, nil)
		return
	}

	entrants := s.eligibleEntrants(ctx, g.GuildID, entrantIDs)
	if len(entrants) == 0 {
		s.editEnded(ctx, g, OutcomeNoEligible, nil)
		return
	}

	winners := winnerIDs(pickWinners(entrants, g.WinnerCount, s.rng))
	s.editEnded(ctx, g, OutcomeWinners, winners)

	if len(winners) > 0 {
		if err := s.messenger.AnnounceWinners(ctx, g, winners); err != nil {
			// The giveaway is finalized either way; the reply is a flourish.
			log.Warn(LogMsgCongratsFailed, "error", err, "message_id", g.MessageID)
		}
	}
}

// FinalizeDue finalizes every due giveaway sequentially. A failure inside
// one giveaway's Finalize does not stop the rest.
func (s *service) FinalizeDue(ctx context.Context) error {
	due, err := s.repo.ListDueGiveaways(ctx, s.now())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToListDue, err)
	}
	for _, g := range due {
		s.Finalize(ctx, g)
	}
	if len(due) > 0 {
		logger.FromContext(ctx).Info(LogMsgFinalizedDue, "count", len(due))
	}
	return nil
}

// Reroll draws replacement winners for an already-finalized giveaway from
// its closed entrant list and appends them to the announcement as a
// distinct rerolled-winners field.
func (s *service) Reroll(ctx context.Context, giveawayID string, count int) ([]domain.Entrant, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRerollCalled, "message_id", giveawayID, "count", count)

	g, err := s.repo.GetGiveaway(ctx, giveawayID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetGiveaway, err)
	}
	if g == nil {
		return nil, domain.ErrGiveawayNotFound
	}
	if g.IsActive {
		return nil, domain.ErrGiveawayStillActive
	}

	entrantIDs, err := s.repo.ListEntrantIDs(ctx, giveawayID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListEntrants, err)
	}

	entrants := s.eligibleEntrants(ctx, g.GuildID, entrantIDs)
	if len(entrants) == 0 {
		return nil, domain.ErrNoEligibleEntrants
	}

	if count < 1 {
		count = 1
	}
	if count > len(entrants) {
		count = len(entrants)
	}

	winners := pickWinners(entrants, count, s.rng)
	if err := s.messenger.AppendReroll(ctx, g, winnerIDs(winners)); err != nil {
		// The draw stands; the caller still receives the winners.
		log.Warn(LogMsgRerollEditFailed, "error", err, "message_id", giveawayID)
	}
	return winners, nil
}

// ForceFinalize finalizes a giveaway on demand. The guild check stops
// operators from finalizing another community's giveaway by message ID.
func (s *service) ForceFinalize(ctx context.Context, guildID, messageID string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgForceFinalizeCalled, "guild_id", guildID, "message_id", messageID)

	g, err := s.repo.GetGiveaway(ctx, messageID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToGetGiveaway, err)
	}
	if g == nil {
		return domain.ErrGiveawayNotFound
	}
	if g.GuildID != guildID {
		return domain.ErrWrongGuild
	}

	s.Finalize(ctx, g)
	return nil
}

// ListActive returns the guild's running giveaways, optionally filtered to
// one channel.
func (s *service) ListActive(ctx context.Context, guildID, channelID string) ([]*domain.Giveaway, error) {
	all, err := s.repo.ListActiveGiveaways(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListActive, err)
	}
	if channelID == "" {
		return all, nil
	}
	filtered := make([]*domain.Giveaway, 0, len(all))
	for _, g := range all {
		if g.ChannelID == channelID {
			filtered = append(filtered, g)
		}
	}
	return filtered, nil
}

// CountEntries returns the authoritative entry count for a giveaway
func (s *service) CountEntries(ctx context.Context, giveawayID string) (int, error) {
	count, err := s.repo.CountEntries(ctx, giveawayID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToCountEntries, err)
	}
	return count, nil
}

// Stop cancels pending entry-count refreshes
func (s *service) Stop() {
	s.refresher.Stop()
}

// eligibleEntrants resolves entrant IDs to current guild members and
// computes their weights. Entrants who left the guild are dropped: a prize
// cannot be delivered to a departed member.
func (s *service) eligibleEntrants(ctx context.Context, guildID string, userIDs []string) []domain.Entrant {
	entrants := make([]domain.Entrant, 0, len(userIDs))
	for _, id := range userIDs {
		roleIDs, ok := s.roster.ResolveMember(ctx, guildID, id)
		if !ok {
			continue
		}
		entrants = append(entrants, domain.Entrant{UserID: id, Weight: weightFor(roleIDs, s.roleWeights)})
	}
	return entrants
}

func (s *service) editEnded(ctx context.Context, g *domain.Giveaway, outcome EndedOutcome, winners []string) {
	metrics.GiveawaysFinalized.WithLabelValues(g.GuildID).Inc()
	if err := s.messenger.EditEnded(ctx, g, outcome, winners); err != nil {
		logger.FromContext(ctx).Error(LogMsgEditEndedFailed, "error", err, "guild_id", g.GuildID, "message_id", g.MessageID, "outcome", string(outcome))
	}
}
