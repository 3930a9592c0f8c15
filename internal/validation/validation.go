// Package validation contains the pure rules deciding whether a candidate
// edit may be submitted. Nothing here has side effects; acting on the result
// is the sync layer's job.
package validation

import (
	"fmt"

	ozzo "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/bombsimon/team-betting-client/internal/domain"
)

// Bounds are the server-supplied limits a bet is validated against. They
// always come from the bet's parent competition.
type Bounds struct {
	MinScore        int
	MaxScore        int
	CompetitorCount int
}

// BoundsFromCompetition derives bet bounds from a competition as currently
// cached. The competitor count is the length of the ordered list, so adding a
// competitor widens the placing bound immediately.
func BoundsFromCompetition(c *domain.Competition) Bounds {
	return Bounds{
		MinScore:        c.MinScore,
		MaxScore:        c.MaxScore,
		CompetitorCount: len(c.Competitors),
	}
}

// Result tells whether a candidate passed and, if not, why.
type Result struct {
	Valid  bool
	Reason string
}

// ValidBet checks a bet candidate against its competition's bounds. Every
// field must pass for the composite to be submittable, so this is recomputed
// after each field change rather than only at submit time.
func ValidBet(bet domain.Bet, bounds Bounds) Result {
	if bet.Placing < 1 || bet.Placing > bounds.CompetitorCount {
		return Result{
			Reason: fmt.Sprintf(
				"placing must be between 1 and %d",
				bounds.CompetitorCount,
			),
		}
	}

	if bet.Score < bounds.MinScore || bet.Score > bounds.MaxScore {
		return Result{
			Reason: fmt.Sprintf(
				"score must be between %d and %d",
				bounds.MinScore, bounds.MaxScore,
			),
		}
	}

	return Result{Valid: true}
}

// ValidateCompetition implements validation for a competition candidate.
func ValidateCompetition(c domain.Competition) error {
	return ozzo.ValidateStruct(&c,
		ozzo.Field(&c.Name, ozzo.Required),
	)
}

// ValidateCompetitor implements validation for a competitor candidate.
func ValidateCompetitor(c domain.Competitor) error {
	return ozzo.ValidateStruct(&c,
		ozzo.Field(&c.Name, ozzo.Required),
	)
}

// ValidateBetter implements validation for a better candidate.
func ValidateBetter(b domain.Better) error {
	return ozzo.ValidateStruct(&b,
		ozzo.Field(&b.Name, ozzo.Required),
		ozzo.Field(&b.Email, ozzo.Required, is.Email),
	)
}

// ValidateEmail implements validation for a bare email, e.g. when requesting
// a login link.
func ValidateEmail(email string) error {
	return ozzo.Validate(email, ozzo.Required, is.Email)
}
