// Package services contains server-side business logic. This file implements
// SignupService: validation, optional bot verification, mobile normalization,
// and the idempotent subscriber upsert.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/landing/internal/common"
	"github.com/dmitrijs2005/landing/internal/server/models"
	"github.com/dmitrijs2005/landing/internal/server/repositories/repomanager"
)

// emailRe accepts the basic local@domain.tld shape; anything fancier is the
// mail provider's problem.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// TokenVerifier validates a client-supplied bot-challenge token.
type TokenVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}

// SignupService handles the signup flow: validate, verify, upsert.
// A nil verifier means bot verification is not configured for this
// deployment and signups proceed unchallenged.
type SignupService struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	verifier TokenVerifier
}

func NewSignupService(db *sql.DB, repos repomanager.RepositoryManager, verifier TokenVerifier) *SignupService {
	return &SignupService{db: db, repos: repos, verifier: verifier}
}

// Signup validates the subscriber, verifies the token when a verifier is
// configured, and upserts the row. Validation and verification failures
// return sentinel errors from common before any storage access; repeat
// signups with the same email update the row in place.
func (s *SignupService) Signup(ctx context.Context, sub *models.Subscriber, token, remoteIP string) error {
	if !emailRe.MatchString(sub.Email) {
		return common.ErrInvalidEmail
	}
	if sub.FirstName == "" {
		return common.ErrFirstNameRequired
	}

	if s.verifier != nil {
		ok, err := s.verifier.Verify(ctx, token, remoteIP)
		if err != nil || !ok {
			// fail closed, including on transport errors
			return common.ErrVerificationFailed
		}
	}

	if err := s.repos.EnsureSchema(ctx, s.db); err != nil {
		return fmt.Errorf("schema error: %w", err)
	}

	sub.Mobile = NormalizeMobile(sub.Mobile)

	return s.repos.Subscribers(s.db).Upsert(ctx, sub)
}

// NormalizeMobile strips every non-digit character before storage.
func NormalizeMobile(mobile string) string {
	var b strings.Builder
	for _, r := range mobile {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
