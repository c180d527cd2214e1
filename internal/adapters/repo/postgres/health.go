package postgres

import (
	"context"

	"gorm.io/gorm"
)

type HealthRepo struct{ db *gorm.DB }

func NewHealthRepo(db *gorm.DB) *HealthRepo { return &HealthRepo{db: db} }

func (r *HealthRepo) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
