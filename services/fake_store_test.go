package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/hpd-transportes/wash-registry/database"
	"github.com/hpd-transportes/wash-registry/models"
)

// fakeStore is an in-memory database.Store. afterLookup, when set, runs
// after a washer name lookup and before the caller inserts.
type fakeStore struct {
	mu        sync.Mutex
	washes    []models.WashRecord
	washers   []models.CustomWasher
	companies []models.ExternalCompany
	queries   []database.WashQuery
	err       error

	afterLookup func()
}

var _ database.Store = (*fakeStore)(nil)

var errStoreDown = errors.New("store unreachable")

func (s *fakeStore) InsertWash(_ context.Context, w *models.WashRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.washes = append(s.washes, *w)
	return nil
}

func (s *fakeStore) FindWashes(_ context.Context, q database.WashQuery) ([]models.WashRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, q)
	if s.err != nil {
		return nil, s.err
	}

	out := make([]models.WashRecord, 0)
	for _, w := range s.washes {
		if q.ServiceDate == "" || w.ServiceDate == q.ServiceDate {
			out = append(out, w)
		}
	}
	switch q.Sort {
	case database.SortNewestFirst:
		sort.Slice(out, func(i, j int) bool { return olderWash(out[j], out[i]) })
	case database.SortOldestFirst:
		sort.Slice(out, func(i, j int) bool { return olderWash(out[i], out[j]) })
	}

	limit := q.Limit
	if limit <= 0 || limit > database.MaxResults {
		limit = database.MaxResults
	}
	if q.Offset >= len(out) {
		return []models.WashRecord{}, nil
	}
	out = out[q.Offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func olderWash(a, b models.WashRecord) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

func (s *fakeStore) CountWashes(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.washes)), nil
}

func (s *fakeStore) DeleteWash(_ context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	for i, w := range s.washes {
		if w.ID == id {
			s.washes = append(s.washes[:i], s.washes[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *fakeStore) InsertWasher(_ context.Context, w *models.CustomWasher) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.washers = append(s.washers, *w)
	return nil
}

func (s *fakeStore) FindWasherByName(_ context.Context, name string) (*models.CustomWasher, error) {
	s.mu.Lock()
	var found *models.CustomWasher
	for _, w := range s.washers {
		if w.Name == name {
			w := w
			found = &w
			break
		}
	}
	err := s.err
	hook := s.afterLookup
	s.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, database.ErrNoDocuments
	}
	return found, nil
}

func (s *fakeStore) ListWashers(context.Context) ([]models.CustomWasher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]models.CustomWasher(nil), s.washers...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *fakeStore) InsertCompany(_ context.Context, c *models.ExternalCompany) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies = append(s.companies, *c)
	return nil
}

func (s *fakeStore) FindCompanyByName(_ context.Context, name string) (*models.ExternalCompany, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, c := range s.companies {
		if c.Name == name {
			c := c
			return &c, nil
		}
	}
	return nil, database.ErrNoDocuments
}

func (s *fakeStore) ListCompanies(context.Context) ([]models.ExternalCompany, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]models.ExternalCompany(nil), s.companies...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *fakeStore) Ping(context.Context) error  { return s.err }
func (s *fakeStore) Close(context.Context) error { return nil }
