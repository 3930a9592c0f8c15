package domain

// Bet is a single better's prediction for one competitor in one competition.
// At most one bet exists per (better, competitor); the server upserts on that
// key, so submitting twice updates in place.
type Bet struct {
	ID            int    `json:"id"`
	CompetitorID  int    `json:"competitor_id"`
	CompetitionID int    `json:"competition_id"`
	BetterID      int    `json:"better_id"`
	Placing       int    `json:"placing"`
	Score         int    `json:"score"`
	Note          string `json:"note"`
}
