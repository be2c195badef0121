package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hpd-transportes/wash-registry/database"
	"github.com/hpd-transportes/wash-registry/models"
)

// ReferenceService manages the washer and external company lists.
//
// Name uniqueness is checked with a lookup before the insert. The two steps
// are not atomic: concurrent adds of the same name can both succeed.
type ReferenceService struct {
	Store database.Store
	Now   func() time.Time
}

func NewReferenceService(store database.Store) *ReferenceService {
	return &ReferenceService{Store: store, Now: time.Now}
}

func (s *ReferenceService) AddWasher(ctx context.Context, name string) (*models.CustomWasher, error) {
	_, err := s.Store.FindWasherByName(ctx, name)
	if err == nil {
		return nil, ErrWasherExists
	}
	if !errors.Is(err, database.ErrNoDocuments) {
		return nil, fmt.Errorf("find washer: %w", err)
	}

	washer := models.CustomWasher{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: s.now(),
	}
	if err := s.Store.InsertWasher(ctx, &washer); err != nil {
		return nil, fmt.Errorf("insert washer: %w", err)
	}
	return &washer, nil
}

func (s *ReferenceService) ListWashers(ctx context.Context) ([]models.CustomWasher, error) {
	washers, err := s.Store.ListWashers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list washers: %w", err)
	}
	return washers, nil
}

func (s *ReferenceService) AddCompany(ctx context.Context, name string) (*models.ExternalCompany, error) {
	_, err := s.Store.FindCompanyByName(ctx, name)
	if err == nil {
		return nil, ErrCompanyExists
	}
	if !errors.Is(err, database.ErrNoDocuments) {
		return nil, fmt.Errorf("find company: %w", err)
	}

	company := models.ExternalCompany{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: s.now(),
	}
	if err := s.Store.InsertCompany(ctx, &company); err != nil {
		return nil, fmt.Errorf("insert company: %w", err)
	}
	return &company, nil
}

func (s *ReferenceService) ListCompanies(ctx context.Context) ([]models.ExternalCompany, error) {
	companies, err := s.Store.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

func (s *ReferenceService) now() time.Time {
	return s.Now().UTC().Truncate(time.Millisecond)
}
