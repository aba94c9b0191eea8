package psql

import (
	"context"

	"notesapi/notesapi/config"
	"notesapi/notesapi/sources/psql/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// maxOpenConns bounds the number of in-flight queries; excess requests
// queue on the pool.
const maxOpenConns = 10

type Database struct {
	DB *gorm.DB
}

func NewDatabase(ctx context.Context, cfg config.Config) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)

	// Auto-migrate models (automatic schema creation)
	if err := db.WithContext(ctx).AutoMigrate(&models.Note{}); err != nil {
		return nil, err
	}

	return &Database{DB: db}, nil
}

func (db *Database) Close() {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return
	}
	sqlDB.Close()
}
