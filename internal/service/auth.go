package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/bombsimon/team-betting-client/internal/cache"
	"github.com/bombsimon/team-betting-client/internal/domain"
	"github.com/bombsimon/team-betting-client/internal/pkg/jwthelper"
	"github.com/bombsimon/team-betting-client/internal/transport"
	"github.com/bombsimon/team-betting-client/internal/validation"
)

var ErrNotSignedIn = errors.New("not signed in")

// AuthService owns registration and the email-link sign-in flow. A
// successful flow ends with a token in the session store and the better it
// identifies in the cache.
type AuthService struct {
	transport transport.Requester
	cache     *cache.Cache
	session   SessionStore
	flash     Flash
}

func NewAuthService(requester transport.Requester, entityCache *cache.Cache, store SessionStore, flash Flash) *AuthService {
	if flash == nil {
		flash = nopFlash
	}

	return &AuthService{
		transport: requester,
		cache:     entityCache,
		session:   store,
		flash:     flash,
	}
}

// RegisterBetter creates a new better. The server responds with a token, so
// registering doubles as signing in.
func (s *AuthService) RegisterBetter(ctx context.Context, better domain.Better) (*domain.Better, error) {
	if err := validation.ValidateBetter(better); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err)
	}

	var response struct {
		JWT string `json:"jwt"`
	}

	if err := s.transport.Request(ctx, http.MethodPost, "/better", better, &response); err != nil {
		return nil, mapRequestError(ctx, err, s.session, s.flash)
	}

	return s.adoptToken(ctx, response.JWT)
}

// SendLoginLink asks the server to email a sign-in link.
func (s *AuthService) SendLoginLink(ctx context.Context, email string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("%w: %s", ErrValidationFailed, err)
	}

	body := map[string]string{"email": email}

	if err := s.transport.Request(ctx, http.MethodPost, "/better/signin", body, nil); err != nil {
		return mapRequestError(ctx, err, s.session, s.flash)
	}

	s.flash(FlashSuccess, "check your inbox for a sign in link")

	return nil
}

// VerifyLoginLink exchanges the opaque payload carried by an emailed link for
// a session token.
func (s *AuthService) VerifyLoginLink(ctx context.Context, encoded string) (*domain.Better, error) {
	body := map[string]string{"encoding": encoded}

	var response struct {
		JWT string `json:"jwt"`
	}

	if err := s.transport.Request(ctx, http.MethodPost, "/signin", body, &response); err != nil {
		return nil, mapRequestError(ctx, err, s.session, s.flash)
	}

	return s.adoptToken(ctx, response.JWT)
}

// CurrentBetter returns the signed-in better, deriving it from the session
// token when the cache has none. An expired token clears the session.
func (s *AuthService) CurrentBetter(ctx context.Context) (*domain.Better, error) {
	if better, ok := s.cache.Better(); ok {
		return better, nil
	}

	token, ok := s.session.Get()
	if !ok {
		return nil, ErrNotSignedIn
	}

	better, err := jwthelper.BetterFromToken(token)
	if err != nil {
		if clearErr := s.session.Clear(ctx); clearErr != nil {
			zap.L().Error("could not clear session", zap.Error(clearErr))
		}

		return nil, fmt.Errorf("%w: %s", ErrNotSignedIn, err)
	}

	s.cache.SetBetter(better)

	return better, nil
}

// SignOut drops the session and the cached better.
func (s *AuthService) SignOut(ctx context.Context) error {
	if err := s.session.Clear(ctx); err != nil {
		return fmt.Errorf("s.session.Clear -> %w", err)
	}

	s.cache.SetBetter(nil)

	return nil
}

func (s *AuthService) adoptToken(ctx context.Context, token string) (*domain.Better, error) {
	better, err := jwthelper.BetterFromToken(token)
	if err != nil {
		return nil, fmt.Errorf("jwthelper.BetterFromToken -> %w", err)
	}

	if err := s.session.Set(ctx, token); err != nil {
		return nil, fmt.Errorf("s.session.Set -> %w", err)
	}

	s.cache.SetBetter(better)
	s.flash(FlashSuccess, fmt.Sprintf("welcome, %s!", better.Name))

	return better, nil
}
