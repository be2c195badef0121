package database

import (
	"context"
	"errors"

	"github.com/hpd-transportes/wash-registry/models"
)

// MaxResults caps every list read against the store.
const MaxResults = 1000

// ErrNoDocuments is returned by lookups that matched nothing.
var ErrNoDocuments = errors.New("no documents in result")

// SortOrder selects the ordering of a wash query. Records are ordered by
// created_at with id breaking ties, so offsets page over a total order.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortNewestFirst
	SortOldestFirst
)

// WashQuery filters and pages the lavagens collection. An empty ServiceDate
// matches every record; Limit <= 0 or above MaxResults means MaxResults.
type WashQuery struct {
	ServiceDate string
	Sort        SortOrder
	Limit       int
	Offset      int
}

func (q WashQuery) limit() int {
	if q.Limit <= 0 || q.Limit > MaxResults {
		return MaxResults
	}
	return q.Limit
}

func (q WashQuery) offset() int {
	if q.Offset < 0 {
		return 0
	}
	return q.Offset
}

// Store is the persistence adapter over the three collections. Every call is
// attempted once; callers get the backend error as is.
type Store interface {
	InsertWash(ctx context.Context, w *models.WashRecord) error
	FindWashes(ctx context.Context, q WashQuery) ([]models.WashRecord, error)
	CountWashes(ctx context.Context) (int64, error)
	DeleteWash(ctx context.Context, id string) (int64, error)

	InsertWasher(ctx context.Context, w *models.CustomWasher) error
	FindWasherByName(ctx context.Context, name string) (*models.CustomWasher, error)
	ListWashers(ctx context.Context) ([]models.CustomWasher, error)

	InsertCompany(ctx context.Context, c *models.ExternalCompany) error
	FindCompanyByName(ctx context.Context, name string) (*models.ExternalCompany, error)
	ListCompanies(ctx context.Context) ([]models.ExternalCompany, error)

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
