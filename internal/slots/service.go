package slots

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oumar782/Jessback/pkg/db/models"
	"github.com/oumar782/Jessback/pkg/enums"
	pkgerrors "github.com/oumar782/Jessback/pkg/errors"
	"github.com/oumar782/Jessback/pkg/pagination"
	"gorm.io/gorm"
)

type slotsRepository interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, row *models.ShipmentSlot) (*models.ShipmentSlot, error)
	List(ctx context.Context, query listQuery) ([]slotRecord, int64, error)
	FindByID(ctx context.Context, id int64) (*slotRecord, error)
	Update(ctx context.Context, row *models.ShipmentSlot) (*models.ShipmentSlot, error)
	Delete(ctx context.Context, id int64) error
	CountPackages(ctx context.Context, slotID int64) (int64, error)
}

// Service exposes shipment slot management operations.
type Service interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, input CreateInput) (*SlotDTO, error)
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Get(ctx context.Context, id int64) (*SlotDTO, error)
	Update(ctx context.Context, id int64, input CreateInput) (*SlotDTO, error)
	Patch(ctx context.Context, id int64, input PatchInput) (*SlotDTO, error)
	Delete(ctx context.Context, id int64) (*SlotDTO, error)
}

// CreateInput holds the validated payload for create and full update.
type CreateInput struct {
	DateDepart     time.Time
	LieuDepart     string
	Destination    string
	CapaciteMax    int
	FraisParKg     float64
	PoidsMaxColis  float64
	TypeTransport  string
	DateExpedition time.Time
}

// PatchInput holds optional mutation values; nil members are left untouched.
type PatchInput struct {
	DateDepart     *time.Time
	LieuDepart     *string
	Destination    *string
	CapaciteMax    *int
	FraisParKg     *float64
	PoidsMaxColis  *float64
	TypeTransport  *string
	DateExpedition *time.Time
}

// IsEmpty reports whether no recognized field is present.
func (p PatchInput) IsEmpty() bool {
	return p.DateDepart == nil &&
		p.LieuDepart == nil &&
		p.Destination == nil &&
		p.CapaciteMax == nil &&
		p.FraisParKg == nil &&
		p.PoidsMaxColis == nil &&
		p.TypeTransport == nil &&
		p.DateExpedition == nil
}

type service struct {
	repo slotsRepository
}

// NewService constructs a slot service instance.
func NewService(repo slotsRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("slots repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count slots")
	}
	return total, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*SlotDTO, error) {
	row, err := buildSlot(input)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert slot")
	}
	// a freshly inserted slot has no colis yet
	return NewSlotDTO(&slotRecord{ShipmentSlot: *created}), nil
}

func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	query := params.toQuery()

	records, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list slots")
	}

	return &ListResult{
		Slots: NewSlotDTOs(records),
		Meta:  pagination.NewMeta(query.pagination, total),
	}, nil
}

func (s *service) Get(ctx context.Context, id int64) (*SlotDTO, error) {
	record, err := s.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewSlotDTO(record), nil
}

func (s *service) Update(ctx context.Context, id int64, input CreateInput) (*SlotDTO, error) {
	existing, err := s.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	replacement, err := buildSlot(input)
	if err != nil {
		return nil, err
	}
	replacement.ID = existing.ID
	replacement.CreatedAt = existing.CreatedAt

	if _, err := s.repo.Update(ctx, replacement); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update slot")
	}
	return s.Get(ctx, id)
}

func (s *service) Patch(ctx context.Context, id int64, input PatchInput) (*SlotDTO, error) {
	if input.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no updatable field provided")
	}
	if err := validatePatch(input); err != nil {
		return nil, err
	}

	existing, err := s.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	row := existing.ShipmentSlot
	applyPatch(&row, input)

	if _, err := s.repo.Update(ctx, &row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: patch slot")
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) (*SlotDTO, error) {
	existing, err := s.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	dependents, err := s.repo.CountPackages(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count slot packages")
	}
	if dependents > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeConflict,
			fmt.Sprintf("slot has %d package(s) assigned and cannot be deleted", dependents))
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete slot")
	}
	return NewSlotDTO(existing), nil
}

func (s *service) findExisting(ctx context.Context, id int64) (*slotRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "slot not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load slot")
	}
	return record, nil
}

func buildSlot(input CreateInput) (*models.ShipmentSlot, error) {
	if input.DateDepart.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "dateDepart is required")
	}
	if strings.TrimSpace(input.LieuDepart) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "lieuDepart is required")
	}
	if strings.TrimSpace(input.Destination) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "destination is required")
	}
	if input.DateExpedition.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "dateExpedition is required")
	}
	if input.CapaciteMax <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "capaciteMax must be positive")
	}
	if input.FraisParKg <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "fraisParKg must be positive")
	}
	if input.PoidsMaxColis <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "poidsMaxColis must be positive")
	}

	transport := enums.TransportTypeStandard
	if input.TypeTransport != "" {
		parsed, err := enums.ParseTransportType(input.TypeTransport)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid typeTransport")
		}
		transport = parsed
	}

	return &models.ShipmentSlot{
		DateDepart:     input.DateDepart,
		LieuDepart:     input.LieuDepart,
		Destination:    input.Destination,
		CapaciteMax:    input.CapaciteMax,
		FraisParKg:     input.FraisParKg,
		PoidsMaxColis:  input.PoidsMaxColis,
		TypeTransport:  transport,
		DateExpedition: input.DateExpedition,
	}, nil
}

func validatePatch(input PatchInput) error {
	if input.CapaciteMax != nil && *input.CapaciteMax <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "capaciteMax must be positive")
	}
	if input.FraisParKg != nil && *input.FraisParKg <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "fraisParKg must be positive")
	}
	if input.PoidsMaxColis != nil && *input.PoidsMaxColis <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "poidsMaxColis must be positive")
	}
	if input.TypeTransport != nil {
		if _, err := enums.ParseTransportType(*input.TypeTransport); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid typeTransport")
		}
	}
	return nil
}

func applyPatch(row *models.ShipmentSlot, input PatchInput) {
	if input.DateDepart != nil {
		row.DateDepart = *input.DateDepart
	}
	if input.LieuDepart != nil {
		row.LieuDepart = *input.LieuDepart
	}
	if input.Destination != nil {
		row.Destination = *input.Destination
	}
	if input.CapaciteMax != nil {
		row.CapaciteMax = *input.CapaciteMax
	}
	if input.FraisParKg != nil {
		row.FraisParKg = *input.FraisParKg
	}
	if input.PoidsMaxColis != nil {
		row.PoidsMaxColis = *input.PoidsMaxColis
	}
	if input.TypeTransport != nil {
		row.TypeTransport = enums.TransportType(*input.TypeTransport)
	}
	if input.DateExpedition != nil {
		row.DateExpedition = *input.DateExpedition
	}
}
