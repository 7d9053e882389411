package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/brsv-srg/qodefly-dashboard/internal/adapter"
	"github.com/brsv-srg/qodefly-dashboard/internal/logger"
	"github.com/brsv-srg/qodefly-dashboard/internal/validators"
	"github.com/brsv-srg/qodefly-dashboard/models"
)

type accountService struct {
	api       adapter.APIClient
	validator validators.Validator

	logger *logger.Logger
}

func NewAccountService(api adapter.APIClient, validator validators.Validator, logger *logger.Logger) AccountService {
	return &accountService{api: api, validator: validator, logger: logger}
}

func (s *accountService) IsAuthenticated(ctx context.Context) bool {
	return s.api.IsAuthenticated(ctx)
}

func (s *accountService) Register(ctx context.Context, form models.Registration) (models.User, error) {
	form.Email = strings.TrimSpace(form.Email)

	if err := s.validator.Validate(ctx, form); err != nil {
		return models.User{}, err
	}

	auth, err := s.api.Register(ctx, form.Email, form.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	s.logger.Info().Int64("user_id", auth.User.ID).Msg("account registered")
	return auth.User, nil
}

func (s *accountService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	creds.Email = strings.TrimSpace(creds.Email)

	if err := s.validator.Validate(ctx, creds); err != nil {
		return models.User{}, err
	}

	auth, err := s.api.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	s.logger.Info().Int64("user_id", auth.User.ID).Msg("logged in")
	return auth.User, nil
}

func (s *accountService) Logout(ctx context.Context) error {
	if err := s.api.ClearToken(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.logger.Info().Msg("logged out")
	return nil
}

func (s *accountService) Profile(ctx context.Context) (models.User, error) {
	if !s.api.IsAuthenticated(ctx) {
		return models.User{}, ErrNotAuthenticated
	}

	user, err := s.api.GetMe(ctx)
	if err == nil {
		return user, nil
	}

	// A 401 has already cleared the token inside the client.
	if !errors.Is(err, adapter.ErrUnauthorized) {
		s.logger.Warn().Err(err).Msg("profile fetch failed, dropping session")
		if clearErr := s.api.ClearToken(ctx); clearErr != nil {
			s.logger.Err(clearErr).Msg("failed to clear session token")
		}
	}

	return models.User{}, fmt.Errorf("profile: %w", err)
}

func (s *accountService) JoinWaitlist(ctx context.Context, email string) (json.RawMessage, error) {
	req := models.WaitlistRequest{Email: strings.TrimSpace(email)}

	if err := s.validator.Validate(ctx, req); err != nil {
		return nil, err
	}

	payload, err := s.api.SubmitWaitlist(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("join waitlist: %w", err)
	}
	return payload, nil
}
