package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hpd-transportes/wash-registry/database"
	"github.com/hpd-transportes/wash-registry/models"
	"github.com/hpd-transportes/wash-registry/utils"
)

// MonthScanBatch is the page size used when scanning for a month.
const MonthScanBatch = database.MaxResults

type WashService struct {
	Store database.Store
	// Now is the clock used for ids, timestamps and "today".
	Now func() time.Time
}

func NewWashService(store database.Store) *WashService {
	return &WashService{Store: store, Now: time.Now}
}

// Create stores a new record with a fresh id and creation time.
func (s *WashService) Create(ctx context.Context, in models.WashRecordInput) (*models.WashRecord, error) {
	record := in.ToRecord()
	record.ID = uuid.NewString()
	// Mongo keeps milliseconds, truncate so the response equals what is stored.
	record.CreatedAt = s.Now().UTC().Truncate(time.Millisecond)

	if err := s.Store.InsertWash(ctx, &record); err != nil {
		return nil, fmt.Errorf("insert wash: %w", err)
	}
	return &record, nil
}

// List returns one page of records, newest first, and the collection size.
func (s *WashService) List(ctx context.Context, limit, offset int) ([]models.WashRecord, int64, error) {
	washes, err := s.Store.FindWashes(ctx, database.WashQuery{
		Sort:   database.SortNewestFirst,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("find washes: %w", err)
	}

	total, err := s.Store.CountWashes(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count washes: %w", err)
	}
	return washes, total, nil
}

// Today returns the records whose service date is the server's local date.
func (s *WashService) Today(ctx context.Context) ([]models.WashRecord, error) {
	today := s.Now().Format(models.ServiceDateLayout)

	washes, err := s.Store.FindWashes(ctx, database.WashQuery{
		ServiceDate: today,
		Sort:        database.SortNewestFirst,
	})
	if err != nil {
		return nil, fmt.Errorf("find washes for %s: %w", today, err)
	}
	return washes, nil
}

// Month returns every record whose service date falls in year/month, in
// insertion order. The whole collection is scanned in batches; records
// with an unparseable date are skipped.
func (s *WashService) Month(ctx context.Context, year, month int) ([]models.WashRecord, error) {
	matches := make([]models.WashRecord, 0)

	for offset := 0; ; offset += MonthScanBatch {
		batch, err := s.Store.FindWashes(ctx, database.WashQuery{
			Sort:   database.SortOldestFirst,
			Limit:  MonthScanBatch,
			Offset: offset,
		})
		if err != nil {
			return nil, fmt.Errorf("scan washes at %d: %w", offset, err)
		}

		for _, w := range batch {
			date, err := w.ServiceTime()
			if err != nil {
				utils.InfoLogger.WithField("id", w.ID).Debugf("skipping wash with bad date %q", w.ServiceDate)
				continue
			}
			if date.Year() == year && int(date.Month()) == month {
				matches = append(matches, w)
			}
		}

		if len(batch) < MonthScanBatch {
			return matches, nil
		}
	}
}

// Delete removes the record with id.
func (s *WashService) Delete(ctx context.Context, id string) error {
	n, err := s.Store.DeleteWash(ctx, id)
	if err != nil {
		return fmt.Errorf("delete wash %s: %w", id, err)
	}
	if n == 0 {
		return ErrWashNotFound
	}
	return nil
}
