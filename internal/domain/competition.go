package domain

import "time"

// Competition is one competition, e.g. Eurovision Song Contest. The server is
// the source of truth; instances live in the entity cache and are replaced
// wholesale when an authoritative response arrives.
type Competition struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Image       string        `json:"image,omitempty"`
	Code        string        `json:"code"`
	MinScore    int           `json:"min_score"`
	MaxScore    int           `json:"max_score"`
	Locked      bool          `json:"locked"`
	Competitors []*Competitor `json:"competitors"`
	Bets        []*Bet        `json:"bets,omitempty"`
	CreatedBy   *Better       `json:"created_by,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
