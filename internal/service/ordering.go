package service

import (
	"fmt"
)

// ReorderCompetitors applies a drag gesture to a competition's ranking list.
// The resulting order is client-local only; if server persistence of the
// ordering is ever added it slots in here, after the cache accepts the move.
func (s *BettingService) ReorderCompetitors(competitionID, fromIndex, toIndex int) error {
	if err := s.cache.ReorderCompetitors(competitionID, fromIndex, toIndex); err != nil {
		return fmt.Errorf("s.cache.ReorderCompetitors -> %w", err)
	}

	return nil
}
