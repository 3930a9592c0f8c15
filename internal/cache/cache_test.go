package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bombsimon/team-betting-client/internal/domain"
)

func seededCache(t *testing.T) *Cache {
	t.Helper()

	c := New()
	c.UpsertCompetition(&domain.Competition{
		ID:       1,
		Name:     "Eurovision",
		MinScore: 1,
		MaxScore: 10,
		Competitors: []*domain.Competitor{
			{ID: 10, Name: "A"},
			{ID: 20, Name: "B"},
			{ID: 30, Name: "C"},
			{ID: 40, Name: "D"},
		},
	})
	c.SetBetter(&domain.Better{ID: 1, Name: "Some Better"})

	return c
}

func competitorNames(c *Cache, competitionID int) []string {
	competition, _ := c.Competition(competitionID)

	names := make([]string, 0, len(competition.Competitors))
	for _, competitor := range competition.Competitors {
		names = append(names, competitor.Name)
	}

	return names
}

func TestUpsertCompetitor(t *testing.T) {
	c := seededCache(t)

	err := c.UpsertCompetitor(1, &domain.Competitor{ID: 50, Name: "E"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, competitorNames(c, 1))

	// Upserting an existing id replaces in place, preserving order.
	err = c.UpsertCompetitor(1, &domain.Competitor{ID: 20, Name: "B2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B2", "C", "D", "E"}, competitorNames(c, 1))

	err = c.UpsertCompetitor(999, &domain.Competitor{ID: 60, Name: "F"})
	require.ErrorIs(t, err, ErrCompetitionNotFound)
}

func TestUpsertBetIdempotent(t *testing.T) {
	c := seededCache(t)

	bet := domain.Bet{
		ID:            5,
		CompetitionID: 1,
		CompetitorID:  10,
		BetterID:      1,
		Placing:       2,
		Score:         7,
	}

	c.UpsertBet(&bet)
	first := c.BetsByCompetitor(1)

	again := bet
	c.UpsertBet(&again)
	second := c.BetsByCompetitor(1)

	require.Len(t, second, 1)
	assert.Equal(t, first[10].Placing, second[10].Placing)
	assert.Equal(t, first[10].Score, second[10].Score)
}

func TestUpsertBetLastAppliedWins(t *testing.T) {
	c := seededCache(t)

	// Two edits to the same bet identity; whichever response is applied last
	// owns the cache, independent of which was issued first.
	c.UpsertBet(&domain.Bet{CompetitionID: 1, CompetitorID: 10, BetterID: 1, Score: 3})
	c.UpsertBet(&domain.Bet{CompetitionID: 1, CompetitorID: 10, BetterID: 1, Score: 9})

	bets := c.BetsByCompetitor(1)
	require.Len(t, bets, 1)
	assert.Equal(t, 9, bets[10].Score)
}

func TestBetsByCompetitorFiltersOnCurrentBetter(t *testing.T) {
	c := seededCache(t)

	c.UpsertBet(&domain.Bet{CompetitionID: 1, CompetitorID: 10, BetterID: 1, Score: 5})
	c.UpsertBet(&domain.Bet{CompetitionID: 1, CompetitorID: 10, BetterID: 2, Score: 8})
	c.UpsertBet(&domain.Bet{CompetitionID: 1, CompetitorID: 20, BetterID: 2, Score: 2})

	bets := c.BetsByCompetitor(1)
	require.Len(t, bets, 1)
	assert.Equal(t, 5, bets[10].Score)

	c.SetBetter(nil)
	assert.Empty(t, c.BetsByCompetitor(1))
}

func TestReorderCompetitors(t *testing.T) {
	cases := []struct {
		description string
		fromIndex   int
		toIndex     int
		expected    []string
		err         error
	}{
		{
			description: "move first to third",
			fromIndex:   0,
			toIndex:     2,
			expected:    []string{"B", "C", "A", "D"},
		},
		{
			description: "move last to first",
			fromIndex:   3,
			toIndex:     0,
			expected:    []string{"D", "A", "B", "C"},
		},
		{
			description: "same index is a no-op",
			fromIndex:   2,
			toIndex:     2,
			expected:    []string{"A", "B", "C", "D"},
		},
		{
			description: "from index out of range",
			fromIndex:   4,
			toIndex:     0,
			expected:    []string{"A", "B", "C", "D"},
			err:         ErrIndexOutOfRange,
		},
		{
			description: "negative to index",
			fromIndex:   0,
			toIndex:     -1,
			expected:    []string{"A", "B", "C", "D"},
			err:         ErrIndexOutOfRange,
		},
	}

	for _, tc := range cases {
		t.Run(tc.description, func(t *testing.T) {
			c := seededCache(t)

			err := c.ReorderCompetitors(1, tc.fromIndex, tc.toIndex)

			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tc.expected, competitorNames(c, 1))
		})
	}

	t.Run("unknown competition", func(t *testing.T) {
		c := seededCache(t)

		err := c.ReorderCompetitors(999, 0, 1)
		require.ErrorIs(t, err, ErrCompetitionNotFound)
	})
}

func TestUpsertCompetitionIndexesBets(t *testing.T) {
	c := New()
	c.SetBetter(&domain.Better{ID: 1})

	c.UpsertCompetition(&domain.Competition{
		ID: 1,
		Competitors: []*domain.Competitor{
			{ID: 10, Name: "A"},
		},
		Bets: []*domain.Bet{
			{CompetitionID: 1, CompetitorID: 10, BetterID: 1, Placing: 1, Score: 4},
			{CompetitionID: 1, CompetitorID: 10, BetterID: 2, Placing: 1, Score: 9},
		},
	})

	bets := c.BetsByCompetitor(1)
	require.Len(t, bets, 1)
	assert.Equal(t, 4, bets[10].Score)
}

func TestCompetitionsOrderedByID(t *testing.T) {
	c := New()
	c.UpsertCompetition(&domain.Competition{ID: 2, Name: "Second"})
	c.UpsertCompetition(&domain.Competition{ID: 1, Name: "First"})

	competitions := c.Competitions()
	require.Len(t, competitions, 2)
	assert.Equal(t, "First", competitions[0].Name)
	assert.Equal(t, "Second", competitions[1].Name)
}
