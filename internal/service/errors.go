package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/bombsimon/team-betting-client/internal/cache"
	"github.com/bombsimon/team-betting-client/internal/transport"
)

var (
	// ErrValidationFailed is a local refusal; the request never reached the
	// network and the cache is untouched.
	ErrValidationFailed = errors.New("validation failed")

	// ErrSubmitInFlight is returned when a submission for the same entity is
	// already in flight. The second intent is dropped, not queued.
	ErrSubmitInFlight = errors.New("a submission for this entity is already in flight")

	// ErrUnauthorized means the server refused our token. The session has
	// been cleared; the caller should route to an unauthenticated flow.
	ErrUnauthorized = errors.New("not authorized")

	ErrCompetitionNotFound = cache.ErrCompetitionNotFound
)

// SessionStore is the session collaborator both services mutate. Implemented
// by session.Store.
type SessionStore interface {
	Get() (token string, ok bool)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// mapRequestError turns a transport failure into the caller-facing error and
// performs the side effects the failure class demands: an unauthorized
// response clears the session, everything else only flashes. The entity cache
// is never touched on failure.
func mapRequestError(ctx context.Context, err error, store SessionStore, flash Flash) error {
	if transport.IsUnauthorized(err) {
		if clearErr := store.Clear(ctx); clearErr != nil {
			zap.L().Error("could not clear session", zap.Error(clearErr))
		}

		flash(FlashError, "your session has expired, please sign in again")

		return fmt.Errorf("%w: %s", ErrUnauthorized, transport.Message(err))
	}

	// Rejected and transport failures read the same to the caller: a flashed
	// message and an untouched cache.
	flash(FlashError, transport.Message(err))

	return err
}
