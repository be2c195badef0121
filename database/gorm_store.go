package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hpd-transportes/wash-registry/models"
)

// GormStore serves the same collections from a relational database. Used
// with sqlite for local runs and tests, and with mysql where no Mongo
// instance is available.
type GormStore struct {
	DB *gorm.DB
}

// OpenGorm opens dialect ("mysql" or "sqlite") at dsn and creates the tables.
func OpenGorm(dialect, dsn string) (*GormStore, error) {
	var dialector gorm.Dialector
	switch dialect {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported gorm dialect %q", dialect)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(log.New(os.Stderr, "\r\n", log.LstdFlags)),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm open %s: %w", dialect, err)
	}
	return NewGormStore(db)
}

// newGormLogger reports slow queries and errors. A missed name lookup is the
// normal path of an add, so record-not-found is not logged.
func newGormLogger(w logger.Writer) logger.Interface {
	return logger.New(w, logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// NewGormStore wraps db and auto-migrates the three tables.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(
		&models.WashRecord{},
		&models.CustomWasher{},
		&models.ExternalCompany{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormStore{DB: db}, nil
}

func (s *GormStore) InsertWash(ctx context.Context, w *models.WashRecord) error {
	return s.DB.WithContext(ctx).Create(w).Error
}

func (s *GormStore) FindWashes(ctx context.Context, q WashQuery) ([]models.WashRecord, error) {
	tx := s.DB.WithContext(ctx).Model(&models.WashRecord{})
	if q.ServiceDate != "" {
		tx = tx.Where("service_date = ?", q.ServiceDate)
	}
	switch q.Sort {
	case SortNewestFirst:
		tx = tx.Order("created_at DESC, id DESC")
	case SortOldestFirst:
		tx = tx.Order("created_at ASC, id ASC")
	}

	washes := make([]models.WashRecord, 0)
	if err := tx.Limit(q.limit()).Offset(q.offset()).Find(&washes).Error; err != nil {
		return nil, err
	}
	return washes, nil
}

func (s *GormStore) CountWashes(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.WashRecord{}).Count(&n).Error
	return n, err
}

func (s *GormStore) DeleteWash(ctx context.Context, id string) (int64, error) {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.WashRecord{})
	return res.RowsAffected, res.Error
}

func (s *GormStore) InsertWasher(ctx context.Context, w *models.CustomWasher) error {
	return s.DB.WithContext(ctx).Create(w).Error
}

func (s *GormStore) FindWasherByName(ctx context.Context, name string) (*models.CustomWasher, error) {
	var washer models.CustomWasher
	if err := s.firstByName(ctx, name, &washer); err != nil {
		return nil, err
	}
	return &washer, nil
}

func (s *GormStore) ListWashers(ctx context.Context) ([]models.CustomWasher, error) {
	washers := make([]models.CustomWasher, 0)
	err := s.DB.WithContext(ctx).Order("name ASC").Limit(MaxResults).Find(&washers).Error
	return washers, err
}

func (s *GormStore) InsertCompany(ctx context.Context, c *models.ExternalCompany) error {
	return s.DB.WithContext(ctx).Create(c).Error
}

func (s *GormStore) FindCompanyByName(ctx context.Context, name string) (*models.ExternalCompany, error) {
	var company models.ExternalCompany
	if err := s.firstByName(ctx, name, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *GormStore) ListCompanies(ctx context.Context) ([]models.ExternalCompany, error) {
	companies := make([]models.ExternalCompany, 0)
	err := s.DB.WithContext(ctx).Order("name ASC").Limit(MaxResults).Find(&companies).Error
	return companies, err
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStore) Close(context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *GormStore) firstByName(ctx context.Context, name string, out interface{}) error {
	res := s.DB.WithContext(ctx).Where("name = ?", name).Limit(1).Find(out)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoDocuments
	}
	return nil
}
