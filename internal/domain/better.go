package domain

// Better is the registered end user who places bets. Identity derives from
// the session token, never from a locally chosen id.
type Better struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Image     string `json:"image,omitempty"`
	Confirmed bool   `json:"confirmed"`
}
