package report

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Report) error
	FindAll(ctx context.Context) ([]Report, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]Report, error)
	FindByID(ctx context.Context, id string) (*Report, error)
	DecideIfPending(ctx context.Context, id, status string, approverID uuid.UUID, decidedAt time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, rep *Report) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Report, error) {
	var reports []Report
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Report, error) {
	var reports []Report
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Report, error) {
	var rep Report
	err := r.db.WithContext(ctx).First(&rep, "id = ?", id).Error
	return &rep, err
}

// DecideIfPending: transisi terminal dalam satu statement kondisional,
// RowsAffected 0 berarti sudah diputuskan pihak lain.
func (r *repository) DecideIfPending(ctx context.Context, id, status string, approverID uuid.UUID, decidedAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Report{}).
		Where("id = ?", id).
		Where("status = ?", StatusPending).
		Updates(map[string]any{
			"status":      status,
			"approver_id": approverID,
			"decided_at":  decidedAt,
		})
	return res.RowsAffected, res.Error
}
