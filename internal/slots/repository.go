package slots

import (
	"context"
	"strings"

	"github.com/oumar782/Jessback/pkg/db/models"
	"gorm.io/gorm"
)

// slotRecord is a slot row plus its aggregate occupancy, scanned from the
// LEFT JOIN against colis. Zero-package slots scan a zero count.
type slotRecord struct {
	models.ShipmentSlot
	NombreColis int64 `gorm:"column:nombre_colis"`
}

const aggregateSelect = "creneaux_expedition.*, COUNT(colis.id) AS nombre_colis"

// Repository exposes shipment slot persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a slot repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) aggregated(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.ShipmentSlot{}).
		Select(aggregateSelect).
		Joins("LEFT JOIN colis ON colis.creneau_id = creneaux_expedition.id").
		Group("creneaux_expedition.id")
}

// Count returns the total number of slot rows.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ShipmentSlot{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Create inserts a new slot row.
func (r *Repository) Create(ctx context.Context, row *models.ShipmentSlot) (*models.ShipmentSlot, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// List returns one page of slots, each carrying its derived occupancy, plus
// the total matching count. Occupancy is recomputed on every call.
func (r *Repository) List(ctx context.Context, query listQuery) ([]slotRecord, int64, error) {
	base := r.aggregated(ctx)

	countBase := r.db.WithContext(ctx).Model(&models.ShipmentSlot{})
	if search := strings.TrimSpace(query.search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		condition := "(LOWER(creneaux_expedition.destination) LIKE ? OR LOWER(creneaux_expedition.lieu_depart) LIKE ?)"
		base = base.Where(condition, pattern, pattern)
		countBase = countBase.Where("(LOWER(destination) LIKE ? OR LOWER(lieu_depart) LIKE ?)", pattern, pattern)
	}

	direction := "DESC"
	if query.sortAsc {
		direction = "ASC"
	}

	var records []slotRecord
	err := base.
		Order("creneaux_expedition." + query.sortColumn + " " + direction).
		Limit(query.pagination.Limit).
		Offset(query.pagination.Offset()).
		Find(&records).
		Error
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := countBase.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// FindByID loads one slot with its derived occupancy.
func (r *Repository) FindByID(ctx context.Context, id int64) (*slotRecord, error) {
	var record slotRecord
	err := r.aggregated(ctx).
		Where("creneaux_expedition.id = ?", id).
		Take(&record).
		Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Update persists all mutable fields of the row.
func (r *Repository) Update(ctx context.Context, row *models.ShipmentSlot) (*models.ShipmentSlot, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Delete removes one slot by id. Callers check for referencing packages
// first; the colis FK restricts the delete otherwise.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ShipmentSlot{}).Error
}

// CountPackages returns how many colis rows reference the slot.
func (r *Repository) CountPackages(ctx context.Context, slotID int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Package{}).
		Where("creneau_id = ?", slotID).
		Count(&total).
		Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
