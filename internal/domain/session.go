package domain

// Session holds the authentication token and nothing else. An empty token
// means anonymous.
type Session struct {
	Token string `json:"token"`
}

// Anonymous reports whether the session carries no token.
func (s Session) Anonymous() bool {
	return s.Token == ""
}
