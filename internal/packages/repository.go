package packages

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/oumar782/Jessback/pkg/db"
	"github.com/oumar782/Jessback/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sentinel errors surfaced by the capacity-guarded insert.
var (
	ErrSlotNotFound = errors.New("referenced slot does not exist")
	ErrSlotFull     = errors.New("referenced slot is at capacity")
)

// packageRecord is a colis row enriched with its slot's details, scanned from
// the LEFT JOIN against creneaux_expedition. Unassigned packages scan nils.
type packageRecord struct {
	models.Package
	CreneauLieuDepart     *string    `gorm:"column:creneau_lieu_depart"`
	CreneauDestination    *string    `gorm:"column:creneau_destination"`
	CreneauDateDepart     *time.Time `gorm:"column:creneau_date_depart"`
	CreneauDateExpedition *time.Time `gorm:"column:creneau_date_expedition"`
}

const enrichedSelect = "colis.*, " +
	"creneaux_expedition.lieu_depart AS creneau_lieu_depart, " +
	"creneaux_expedition.destination AS creneau_destination, " +
	"creneaux_expedition.date_depart AS creneau_date_depart, " +
	"creneaux_expedition.date_expedition AS creneau_date_expedition"

// Repository exposes colis persistence operations.
type Repository struct {
	client *db.Client
}

// NewRepository constructs a package repository tied to the shared db client.
func NewRepository(client *db.Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) enriched(ctx context.Context) *gorm.DB {
	return r.client.DB().WithContext(ctx).
		Model(&models.Package{}).
		Select(enrichedSelect).
		Joins("LEFT JOIN creneaux_expedition ON creneaux_expedition.id = colis.creneau_id")
}

// Count returns the total number of colis rows.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.client.DB().WithContext(ctx).Model(&models.Package{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Create inserts a colis row with no slot assignment.
func (r *Repository) Create(ctx context.Context, row *models.Package) (*models.Package, error) {
	if err := r.client.DB().WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// CreateInSlot inserts a colis row assigned to a slot. The slot row is locked
// for the duration of the transaction, so the capacity check and the insert
// are atomic with respect to concurrent creations against the same slot.
// Returns ErrSlotNotFound or ErrSlotFull when the assignment is rejected.
func (r *Repository) CreateInSlot(ctx context.Context, row *models.Package) (*models.Package, error) {
	if row.CreneauID == nil {
		return r.Create(ctx, row)
	}

	err := r.client.WithTx(ctx, func(tx *gorm.DB) error {
		var slot models.ShipmentSlot
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Take(&slot, "id = ?", *row.CreneauID).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}
			return err
		}

		var assigned int64
		err = tx.Model(&models.Package{}).
			Where("creneau_id = ?", slot.ID).
			Count(&assigned).
			Error
		if err != nil {
			return err
		}
		if assigned >= int64(slot.CapaciteMax) {
			return ErrSlotFull
		}

		return tx.Create(row).Error
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// List returns one page of enriched colis plus the total matching count.
func (r *Repository) List(ctx context.Context, query listQuery) ([]packageRecord, int64, error) {
	base := r.enriched(ctx)
	countBase := r.client.DB().WithContext(ctx).Model(&models.Package{})

	if search := strings.TrimSpace(query.search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		condition := "(LOWER(colis.expediteur_nom) LIKE ? OR LOWER(colis.destinataire_nom) LIKE ? OR LOWER(colis.code_suivi) LIKE ?)"
		base = base.Where(condition, pattern, pattern, pattern)
		countBase = countBase.Where(
			"(LOWER(expediteur_nom) LIKE ? OR LOWER(destinataire_nom) LIKE ? OR LOWER(code_suivi) LIKE ?)",
			pattern, pattern, pattern,
		)
	}
	if query.statut != nil {
		base = base.Where("colis.statut = ?", query.statut.String())
		countBase = countBase.Where("statut = ?", query.statut.String())
	}

	direction := "DESC"
	if query.sortAsc {
		direction = "ASC"
	}

	var records []packageRecord
	err := base.
		Order("colis." + query.sortColumn + " " + direction).
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

// FindByID loads one enriched colis row.
func (r *Repository) FindByID(ctx context.Context, id int64) (*packageRecord, error) {
	var record packageRecord
	if err := r.enriched(ctx).Where("colis.id = ?", id).Take(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindByCodeSuivi loads one enriched colis row by its exact tracking code.
func (r *Repository) FindByCodeSuivi(ctx context.Context, code string) (*packageRecord, error) {
	var record packageRecord
	if err := r.enriched(ctx).Where("colis.code_suivi = ?", code).Take(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Update persists all mutable fields of the row. Capacity is not re-checked
// even when the slot assignment changes.
func (r *Repository) Update(ctx context.Context, row *models.Package) (*models.Package, error) {
	if err := r.client.DB().WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Delete removes one colis by id. Slot occupancy is derived, so nothing else
// needs adjusting.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.client.DB().WithContext(ctx).Where("id = ?", id).Delete(&models.Package{}).Error
}
