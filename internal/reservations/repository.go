package reservations

import (
	"context"
	"strings"

	"github.com/oumar782/Jessback/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes reservation persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a reservation repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Count returns the total number of reservation rows.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Reservation{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Create inserts a new reservation row.
func (r *Repository) Create(ctx context.Context, row *models.Reservation) (*models.Reservation, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// List returns one page of reservations plus the total matching count.
// The page fetch and the count are two independent statements; totals can be
// stale relative to the returned rows under concurrent writes.
func (r *Repository) List(ctx context.Context, query listQuery) ([]models.Reservation, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Reservation{})

	if search := strings.TrimSpace(query.search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		base = base.Where(
			"(LOWER(nom) LIKE ? OR LOWER(prenom) LIKE ? OR LOWER(email) LIKE ? OR LOWER(destination) LIKE ?)",
			pattern, pattern, pattern, pattern,
		)
	}

	direction := "DESC"
	if query.sortAsc {
		direction = "ASC"
	}

	var rows []models.Reservation
	err := base.Session(&gorm.Session{}).
		Order(query.sortColumn + " " + direction).
		Limit(query.pagination.Limit).
		Offset(query.pagination.Offset()).
		Find(&rows).
		Error
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// FindByID loads one reservation.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Reservation, error) {
	var row models.Reservation
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Update persists all mutable fields of the row.
func (r *Repository) Update(ctx context.Context, row *models.Reservation) (*models.Reservation, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Delete removes one reservation by id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Reservation{}).Error
}

// DeleteMany removes all reservations matching the given ids in one statement
// and returns the removed rows.
func (r *Repository) DeleteMany(ctx context.Context, ids []int64) ([]models.Reservation, error) {
	var rows []models.Reservation
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return rows, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Reservation{}).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
