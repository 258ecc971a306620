// auth_service.go
//
// guardroster: guard, inspection and exercise records service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of guardroster.
// guardroster is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// guardroster is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with guardroster.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/localnerve/guardroster/internal/config"
	"github.com/localnerve/guardroster/internal/metrics"
	"github.com/localnerve/guardroster/internal/models"
	"github.com/localnerve/guardroster/internal/store"
	"github.com/localnerve/guardroster/internal/types"
	"go.uber.org/zap"
)

// LoginResult is returned to a caller that presented the right credential
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// CheckResult reports whether a bearer token is the session token
type CheckResult struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	UserID          string `json:"userId,omitempty"`
}

// AuthService owns the single shared credential. The session token is read
// once at startup and held for the life of the process.
type AuthService struct {
	repo     store.Repository
	log      *zap.SugaredLogger
	token    string
	username string
}

// NewAuthService seeds the configured credential on first run and loads the stored one.
// When no token is configured a random one is generated for the seed.
func NewAuthService(ctx context.Context, repo store.Repository, cred config.Credential, log *zap.SugaredLogger) (*AuthService, error) {
	token := cred.Token
	if token == "" {
		token = uuid.NewString()
	}

	seed, err := models.NewUser(cred.Username, cred.Password, token)
	if err != nil {
		return nil, err
	}

	stored, err := repo.SeedCredential(ctx, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to seed credential: %w", err)
	}
	if stored.Username != cred.Username && log != nil {
		log.Warnw("Stored credential differs from configuration, keeping stored", "stored", stored.Username)
	}

	return &AuthService{
		repo:     repo,
		log:      log,
		token:    stored.Token,
		username: stored.Username,
	}, nil
}

// Login exchanges username and password for the session token
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	token, err := s.repo.VerifyCredential(ctx, username, password)
	if errors.Is(err, store.ErrUnauthorized) {
		metrics.Login(false)
		return LoginResult{}, types.NewInvalidCredentialsError()
	}
	if err != nil {
		return LoginResult{}, err
	}
	metrics.Login(true)
	return LoginResult{Token: token, Username: username}, nil
}

// Authenticate returns the user id bound to token, comparing in constant time
func (s *AuthService) Authenticate(token string) (string, bool) {
	if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(s.token)) != 1 {
		return "", false
	}
	return s.username, true
}

// Check reports the authentication state of a token
func (s *AuthService) Check(token string) CheckResult {
	userID, ok := s.Authenticate(token)
	return CheckResult{IsAuthenticated: ok, UserID: userID}
}
