// Package bankdetails fetches a user's bank accounts from the external
// lookup provider and mirrors them into local storage.
package bankdetails

import (
	"context"
	"errors"
	"fmt"
	"log"

	"paisa/internal/models"
	"paisa/internal/repositories"

	"github.com/google/uuid"
)

// ErrNoResults means the provider answered but found no accounts for the
// phone number.
var ErrNoResults = errors.New("no bank details found for this phone number")

// FetchResult carries the correlation id and every account the provider
// returned, not only the newly written ones.
type FetchResult struct {
	ReferenceID string
	Accounts    []Account
}

type Service interface {
	// Fetch looks up the user's accounts by phone number and upserts each
	// one keyed by (user, VPA). Every call re-queries the provider; results
	// are never cached. The reference id in the result is valid even when
	// an error is returned, for traceability.
	Fetch(ctx context.Context, user *models.User) (*FetchResult, error)
}

type service struct {
	provider Provider
	repo     repositories.BankDetailsRepository
}

func NewService(provider Provider, repo repositories.BankDetailsRepository) Service {
	return &service{
		provider: provider,
		repo:     repo,
	}
}

func (s *service) Fetch(ctx context.Context, user *models.User) (*FetchResult, error) {
	result := &FetchResult{ReferenceID: uuid.NewString()}

	accounts, err := s.provider.LookupVPA(ctx, result.ReferenceID, user.Phone)
	if err != nil {
		log.Printf("bank lookup %s failed for user %d: %v", result.ReferenceID, user.ID, err)
		return result, fmt.Errorf("failed to connect to provider: %w", err)
	}
	if len(accounts) == 0 {
		return result, ErrNoResults
	}

	for _, account := range accounts {
		details := &models.BankDetails{
			UserID:       user.ID,
			Name:         account.Name,
			VPA:          account.VPA,
			MerchantIFSC: account.MerchantIFSC,
			TPAP:         models.StringList(account.TPAP),
		}
		if err := s.repo.Upsert(details); err != nil {
			return result, err
		}
	}

	result.Accounts = accounts
	return result, nil
}
