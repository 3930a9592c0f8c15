// Package cache is the in-memory entity store the view layer reads from. It
// owns every entity instance; callers get references and must re-fetch them
// after a mutation. Server responses merged here are always authoritative.
package cache

import (
	"errors"
	"sort"
	"sync"

	"github.com/bombsimon/team-betting-client/internal/domain"
)

var (
	ErrCompetitionNotFound = errors.New("competition not found")
	ErrIndexOutOfRange     = errors.New("index out of range")
)

type betKey struct {
	competitorID int
	betterID     int
}

// Cache holds competitions, their competitors and bets, and the current
// better. Mutation is confined to a single logical flow of control, but the
// lock keeps late response application safe regardless of which goroutine
// delivers it.
type Cache struct {
	mu           sync.RWMutex
	competitions map[int]*domain.Competition
	bets         map[int]map[betKey]*domain.Bet
	better       *domain.Better
}

func New() *Cache {
	return &Cache{
		competitions: map[int]*domain.Competition{},
		bets:         map[int]map[betKey]*domain.Bet{},
	}
}

// UpsertCompetition merges a competition by id. The server's version replaces
// the cached one entirely, including competitor order; any bets riding on the
// payload are indexed as well.
func (c *Cache) UpsertCompetition(competition *domain.Competition) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.competitions[competition.ID] = competition

	for _, bet := range competition.Bets {
		c.indexBet(bet)
	}
}

// UpsertCompetitor merges a competitor into its competition. A new id is
// appended to the ordered list; an already-present id is replaced in place so
// existing order is preserved.
func (c *Cache) UpsertCompetitor(competitionID int, competitor *domain.Competitor) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	competition, ok := c.competitions[competitionID]
	if !ok {
		return ErrCompetitionNotFound
	}

	competitor.CompetitionID = competitionID

	for i, existing := range competition.Competitors {
		if existing.ID == competitor.ID {
			competition.Competitors[i] = competitor
			return nil
		}
	}

	competition.Competitors = append(competition.Competitors, competitor)

	return nil
}

// UpsertBet merges a bet by its (better, competitor) identity.
func (c *Cache) UpsertBet(bet *domain.Bet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.indexBet(bet)
}

func (c *Cache) indexBet(bet *domain.Bet) {
	byKey, ok := c.bets[bet.CompetitionID]
	if !ok {
		byKey = map[betKey]*domain.Bet{}
		c.bets[bet.CompetitionID] = byKey
	}

	byKey[betKey{competitorID: bet.CompetitorID, betterID: bet.BetterID}] = bet
}

// SetBetter replaces the current better.
func (c *Cache) SetBetter(better *domain.Better) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.better = better
}

// Better returns the current better, if any.
func (c *Cache) Better() (*domain.Better, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.better, c.better != nil
}

// Competition returns a cached competition by id.
func (c *Cache) Competition(id int) (*domain.Competition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	competition, ok := c.competitions[id]

	return competition, ok
}

// Competitions returns all cached competitions, ordered by id.
func (c *Cache) Competitions() []*domain.Competition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	competitions := make([]*domain.Competition, 0, len(c.competitions))
	for _, competition := range c.competitions {
		competitions = append(competitions, competition)
	}

	sort.Slice(competitions, func(i, j int) bool {
		return competitions[i].ID < competitions[j].ID
	})

	return competitions
}

// BetsByCompetitor returns the current better's bet per competitor in a
// competition. The uniqueness of (better, competitor) guarantees at most one
// entry per competitor.
func (c *Cache) BetsByCompetitor(competitionID int) map[int]*domain.Bet {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := map[int]*domain.Bet{}

	if c.better == nil {
		return result
	}

	for key, bet := range c.bets[competitionID] {
		if key.betterID == c.better.ID {
			result[key.competitorID] = bet
		}
	}

	return result
}

// ReorderCompetitors removes the competitor at fromIndex and reinserts it at
// toIndex, shifting the elements in between. Out-of-bounds indices leave the
// list untouched.
func (c *Cache) ReorderCompetitors(competitionID, fromIndex, toIndex int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	competition, ok := c.competitions[competitionID]
	if !ok {
		return ErrCompetitionNotFound
	}

	list := competition.Competitors
	if fromIndex < 0 || fromIndex >= len(list) || toIndex < 0 || toIndex >= len(list) {
		return ErrIndexOutOfRange
	}

	if fromIndex == toIndex {
		return nil
	}

	moved := list[fromIndex]
	list = append(list[:fromIndex], list[fromIndex+1:]...)

	list = append(list, nil)
	copy(list[toIndex+1:], list[toIndex:])
	list[toIndex] = moved

	competition.Competitors = list

	return nil
}
