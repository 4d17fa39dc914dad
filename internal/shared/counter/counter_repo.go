package counter

import (
	"context"
	"database/sql"
	"time"

	"go-hris-leave/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompanyCounter is a per-company monotonic sequence, one row per counter type.
type CompanyCounter struct {
	CompanyID   string `gorm:"type:uuid;primaryKey"`
	CounterType string `gorm:"type:varchar(50);primaryKey"`
	LastValue   int64  `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

// GetNextValue increments and returns the counter. The upsert takes the row
// lock, so callers inside one transaction never see the same value twice.
func (r *repository) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	row := CompanyCounter{
		CompanyID:   companyID,
		CounterType: counterType,
		LastValue:   1,
		UpdatedAt:   time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "company_id"}, {Name: "counter_type"}},
			DoUpdates: clause.Assignments(map[string]any{
				"last_value": gorm.Expr("company_counters.last_value + 1"),
				"updated_at": row.UpdatedAt,
			}),
		}).
		Create(&row).Error
	if err != nil {
		return 0, err
	}

	var current CompanyCounter
	err = r.db.WithContext(ctx).
		Where("company_id = ? AND counter_type = ?", companyID, counterType).
		Take(&current).Error
	if err != nil {
		return 0, err
	}

	return current.LastValue, nil
}
