// Package services contains application services for the jobpilot client.
// This file defines the user service: sign-up, profile lookup and update,
// and the liveness probe used by the CLI status line.
package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/jobpilot/internal/client/client"
	"github.com/dmitrijs2005/jobpilot/internal/client/models"
	"github.com/dmitrijs2005/jobpilot/internal/common"
)

// UserService defines user operations for the CLI.
//
// Contract:
//   - Register: create a user; a taken e-mail yields common.ErrAlreadyExists.
//   - Get / Update: unknown ids yield common.ErrNotFound. An Update that
//     changes the e-mail may also yield common.ErrAlreadyExists.
//   - Any other rejected request yields common.ErrValidation.
//   - Ping: check backend liveness.
//
// The original backend error stays in the chain for errors.As.
type UserService interface {
	Register(ctx context.Context, email, fullName, telegramChatID string, emailPassword []byte) (*models.User, error)
	Get(ctx context.Context, userID int64) (*models.User, error)
	Update(ctx context.Context, userID int64, update models.UserUpdate) (*models.User, error)
	Ping(ctx context.Context) error
}

type userService struct {
	client client.Client
}

// NewUserService constructs a UserService bound to the given API client.
func NewUserService(client client.Client) UserService {
	return &userService{client: client}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Register signs a user up. Blank optional fields are not sent.
func (s *userService) Register(ctx context.Context, email, fullName, telegramChatID string, emailPassword []byte) (*models.User, error) {
	req := models.UserCreate{
		Email:          strings.TrimSpace(email),
		FullName:       strings.TrimSpace(fullName),
		TelegramChatID: optional(telegramChatID),
	}
	if len(emailPassword) > 0 {
		pw := string(emailPassword)
		req.EmailPassword = &pw
	}

	u, err := s.client.CreateUser(ctx, req)
	if err != nil {
		return nil, mapError(err, true)
	}
	return u, nil
}

func (s *userService) Get(ctx context.Context, userID int64) (*models.User, error) {
	u, err := s.client.GetUser(ctx, userID)
	if err != nil {
		return nil, mapError(err, false)
	}
	return u, nil
}

func (s *userService) Update(ctx context.Context, userID int64, update models.UserUpdate) (*models.User, error) {
	u, err := s.client.UpdateUser(ctx, userID, update)
	if err != nil {
		return nil, mapError(err, update.Email != nil)
	}
	return u, nil
}

// Ping proxies a liveness check to the underlying client.
func (s *userService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// mapError attaches a domain sentinel to backend status failures. The
// backend answers 400 for a taken e-mail, so a 400 means ErrAlreadyExists
// only when the request carried an e-mail.
func mapError(err error, sentEmail bool) error {
	switch client.StatusCode(err) {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", common.ErrNotFound, err)
	case http.StatusBadRequest:
		if sentEmail {
			return fmt.Errorf("%w: %w", common.ErrAlreadyExists, err)
		}
		return fmt.Errorf("%w: %w", common.ErrValidation, err)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %w", common.ErrValidation, err)
	default:
		return err
	}
}
