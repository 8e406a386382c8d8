package db

import (
	"context"
	"errors"
	"time"

	"github.com/jeebeez/jeebeecard/internal/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

type kvEntry struct {
	EntryKey   string    `gorm:"column:entry_key;primaryKey"`
	EntryValue string    `gorm:"column:entry_value;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (kvEntry) TableName() string { return "kv_entries" }

// GormStore is the key-value store on top of any gorm dialect. Production
// uses postgres.
type GormStore struct {
	db  *gorm.DB
	log *logger.Logger
}

// OpenPostgres connects to the postgres database at dsn.
func OpenPostgres(dsn string) (*GormStore, error) {
	log := logger.Default().WithPrefix("db")
	log.Info("opening postgres database")

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Error("failed to open postgres: %v", err)
		return nil, err
	}
	return NewGormStore(gdb)
}

// NewGormStore migrates the kv_entries table on gdb and wraps it.
func NewGormStore(gdb *gorm.DB) (*GormStore, error) {
	log := logger.Default().WithPrefix("db")
	if err := gdb.AutoMigrate(&kvEntry{}); err != nil {
		log.Error("failed to migrate kv_entries: %v", err)
		return nil, err
	}
	log.Info("database ready")
	return &GormStore{db: gdb, log: log}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("reading key: %s", key)

	var e kvEntry
	err := s.db.WithContext(ctx).Where("entry_key = ?", key).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Debug("key not found: %s", key)
		return nil, false, nil
	}
	if err != nil {
		log.Error("failed to read key %s: %v", key, err)
		return nil, false, err
	}
	return []byte(e.EntryValue), true, nil
}

func (s *GormStore) Put(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("writing key: %s (%d bytes)", key, len(value))

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
	}).Create(&kvEntry{EntryKey: key, EntryValue: string(value), UpdatedAt: time.Now()}).Error
	if err != nil {
		log.Error("failed to write key %s: %v", key, err)
	}
	return err
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
