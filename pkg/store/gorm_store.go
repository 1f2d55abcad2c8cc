package store

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"symptomcheck/pkg/domain"
)

// GormStore implements Store using GORM + Postgres.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens the DB and runs auto-migrations. Migration is additive
// only and safe to run on every start.
func NewGormStore(dsn string) (*GormStore, error) {
	gormLog := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.AutoMigrate(&SymptomCheckModel{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

// AppendCheck inserts one row; the database assigns id and created_at.
func (s *GormStore) AppendCheck(ctx context.Context, symptoms, response string) (domain.SymptomCheck, error) {
	model := SymptomCheckModel{
		Symptoms:  symptoms,
		Response:  response,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.SymptomCheck{}, fmt.Errorf("insert symptom check: %w", err)
	}
	return checkFromModel(model), nil
}

// ListChecks returns all checks newest first; id breaks created_at ties.
func (s *GormStore) ListChecks(ctx context.Context) ([]domain.SymptomCheck, error) {
	var models []SymptomCheckModel
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list symptom checks: %w", err)
	}
	checks := make([]domain.SymptomCheck, 0, len(models))
	for _, model := range models {
		checks = append(checks, checkFromModel(model))
	}
	return checks, nil
}

func checkFromModel(m SymptomCheckModel) domain.SymptomCheck {
	return domain.SymptomCheck{
		ID:        m.ID,
		Symptoms:  m.Symptoms,
		Response:  m.Response,
		CreatedAt: m.CreatedAt,
	}
}
