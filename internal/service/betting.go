package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bombsimon/team-betting-client/internal/cache"
	"github.com/bombsimon/team-betting-client/internal/domain"
	"github.com/bombsimon/team-betting-client/internal/transport"
	"github.com/bombsimon/team-betting-client/internal/validation"
)

const (
	kindBet         = "bet"
	kindCompetition = "competition"
	kindCompetitor  = "competitor"
)

// BettingService mediates every mutating intent: validate locally, mark the
// entity submitting, send the request, then merge the authoritative response
// into the cache. Failed requests leave the cache exactly as it was.
type BettingService struct {
	transport transport.Requester
	cache     *cache.Cache
	session   SessionStore
	flash     Flash
	tracker   *submitTracker
}

func NewBettingService(requester transport.Requester, entityCache *cache.Cache, store SessionStore, flash Flash) *BettingService {
	if flash == nil {
		flash = nopFlash
	}

	return &BettingService{
		transport: requester,
		cache:     entityCache,
		session:   store,
		flash:     flash,
		tracker:   newSubmitTracker(),
	}
}

// LoadCompetitions fetches every competition and merges them into the cache.
func (s *BettingService) LoadCompetitions(ctx context.Context) ([]*domain.Competition, error) {
	var competitions []*domain.Competition

	if err := s.transport.Request(ctx, http.MethodGet, "/competition", nil, &competitions); err != nil {
		return nil, mapRequestError(ctx, err, s.session, s.flash)
	}

	for _, competition := range competitions {
		s.cache.UpsertCompetition(competition)
	}

	return competitions, nil
}

// LoadCompetition fetches a single competition and merges it into the cache.
func (s *BettingService) LoadCompetition(ctx context.Context, id int) (*domain.Competition, error) {
	var competition domain.Competition

	path := fmt.Sprintf("/competition/%d", id)
	if err := s.transport.Request(ctx, http.MethodGet, path, nil, &competition); err != nil {
		return nil, mapRequestError(ctx, err, s.session, s.flash)
	}

	s.cache.UpsertCompetition(&competition)

	return &competition, nil
}

// SubmitBet upserts the current better's bet for one competitor. The
// candidate is validated against the competition's bounds before anything
// goes over the wire; an invalid candidate is refused locally.
func (s *BettingService) SubmitBet(ctx context.Context, bet domain.Bet) (*domain.Bet, error) {
	competition, ok := s.cache.Competition(bet.CompetitionID)
	if !ok {
		return nil, ErrCompetitionNotFound
	}

	result := validation.ValidBet(bet, validation.BoundsFromCompetition(competition))
	if !result.Valid {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, result.Reason)
	}

	// A bet is identified by (better, competitor); the better is fixed by the
	// session, so the competitor id is the in-flight key.
	key := entityKey{kind: kindBet, id: bet.CompetitorID}
	if !s.tracker.begin(key) {
		return nil, ErrSubmitInFlight
	}

	var merged domain.Bet

	if err := s.transport.Request(ctx, http.MethodPut, "/bet", bet, &merged); err != nil {
		err = mapRequestError(ctx, err, s.session, s.flash)
		s.tracker.fail(key, err.Error())

		return nil, err
	}

	s.cache.UpsertBet(&merged)
	s.tracker.commit(key)
	s.flash(FlashSuccess, "bet saved")

	return &merged, nil
}

// AddCompetition creates a new competition and caches the server's version.
func (s *BettingService) AddCompetition(ctx context.Context, competition domain.Competition) (*domain.Competition, error) {
	if err := validation.ValidateCompetition(competition); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err)
	}

	// New entities have no id yet, so only one create per kind may be in
	// flight at a time.
	key := entityKey{kind: kindCompetition}
	if !s.tracker.begin(key) {
		return nil, ErrSubmitInFlight
	}

	var created domain.Competition

	if err := s.transport.Request(ctx, http.MethodPost, "/competition", competition, &created); err != nil {
		err = mapRequestError(ctx, err, s.session, s.flash)
		s.tracker.fail(key, err.Error())

		return nil, err
	}

	s.cache.UpsertCompetition(&created)
	s.tracker.commit(key)
	s.flash(FlashSuccess, fmt.Sprintf("competition %q created", created.Name))

	return &created, nil
}

// AddCompetitor creates a competitor in a competition. The server response is
// appended to the competition's ordered list, which widens the placing bound
// for subsequent bets immediately.
func (s *BettingService) AddCompetitor(ctx context.Context, competitionID int, competitor domain.Competitor) (*domain.Competitor, error) {
	if err := validation.ValidateCompetitor(competitor); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err)
	}

	if _, ok := s.cache.Competition(competitionID); !ok {
		return nil, ErrCompetitionNotFound
	}

	key := entityKey{kind: kindCompetitor}
	if !s.tracker.begin(key) {
		return nil, ErrSubmitInFlight
	}

	competitor.CompetitionID = competitionID

	var created domain.Competitor

	if err := s.transport.Request(ctx, http.MethodPost, "/competitor", competitor, &created); err != nil {
		err = mapRequestError(ctx, err, s.session, s.flash)
		s.tracker.fail(key, err.Error())

		return nil, err
	}

	if err := s.cache.UpsertCompetitor(competitionID, &created); err != nil {
		s.tracker.fail(key, err.Error())

		return nil, fmt.Errorf("s.cache.UpsertCompetitor -> %w", err)
	}

	s.tracker.commit(key)
	s.flash(FlashSuccess, fmt.Sprintf("competitor %q added", created.Name))

	return &created, nil
}

// Competition returns a cached competition.
func (s *BettingService) Competition(id int) (*domain.Competition, bool) {
	return s.cache.Competition(id)
}

// Competitions returns every cached competition.
func (s *BettingService) Competitions() []*domain.Competition {
	return s.cache.Competitions()
}

// BetsByCompetitor returns the current better's bets keyed by competitor.
func (s *BettingService) BetsByCompetitor(competitionID int) map[int]*domain.Bet {
	return s.cache.BetsByCompetitor(competitionID)
}

// BetState returns the submit state for the bet on one competitor.
func (s *BettingService) BetState(competitorID int) SubmitState {
	return s.tracker.state(entityKey{kind: kindBet, id: competitorID})
}
