package domain

import "time"

// Competitor is a team or player competing in a competition. Its ranking
// position is not stored here; ordering lives on the competition's list.
type Competitor struct {
	ID            int       `json:"id"`
	CompetitionID int       `json:"competition_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Image         string    `json:"image,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
