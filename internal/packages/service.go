package packages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oumar782/Jessback/pkg/db/models"
	"github.com/oumar782/Jessback/pkg/enums"
	pkgerrors "github.com/oumar782/Jessback/pkg/errors"
	"github.com/oumar782/Jessback/pkg/pagination"
	"gorm.io/gorm"
)

type packagesRepository interface {
	Count(ctx context.Context) (int64, error)
	CreateInSlot(ctx context.Context, row *models.Package) (*models.Package, error)
	List(ctx context.Context, query listQuery) ([]packageRecord, int64, error)
	FindByID(ctx context.Context, id int64) (*packageRecord, error)
	FindByCodeSuivi(ctx context.Context, code string) (*packageRecord, error)
	Update(ctx context.Context, row *models.Package) (*models.Package, error)
	Delete(ctx context.Context, id int64) error
}

// Service exposes colis management operations.
type Service interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, input CreateInput) (*PackageDTO, error)
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Get(ctx context.Context, id int64) (*PackageDTO, error)
	GetByCodeSuivi(ctx context.Context, code string) (*PackageDTO, error)
	Update(ctx context.Context, id int64, input CreateInput) (*PackageDTO, error)
	Patch(ctx context.Context, id int64, input PatchInput) (*PackageDTO, error)
	Delete(ctx context.Context, id int64) (*PackageDTO, error)
}

// CreateInput holds the validated payload for create and full update.
// Optional members default per the schema when absent.
type CreateInput struct {
	CreneauID             *int64
	ExpediteurNom         string
	ExpediteurTelephone   string
	ExpediteurAdresse     string
	DestinataireNom       string
	DestinataireTelephone string
	DestinataireAdresse   string
	TypeColis             string
	Poids                 float64
	Description           *string
	ValeurDeclaree        *float64
	Assure                *bool
	ModePaiement          string
	Statut                string
}

// PatchInput holds optional mutation values; nil members are left untouched.
type PatchInput struct {
	CreneauID             *int64
	CreneauIDSet          bool
	ExpediteurNom         *string
	ExpediteurTelephone   *string
	ExpediteurAdresse     *string
	DestinataireNom       *string
	DestinataireTelephone *string
	DestinataireAdresse   *string
	TypeColis             *string
	Poids                 *float64
	Description           *string
	ValeurDeclaree        *float64
	Assure                *bool
	ModePaiement          *string
	Statut                *string
}

// IsEmpty reports whether no recognized field is present.
func (p PatchInput) IsEmpty() bool {
	return !p.CreneauIDSet &&
		p.ExpediteurNom == nil &&
		p.ExpediteurTelephone == nil &&
		p.ExpediteurAdresse == nil &&
		p.DestinataireNom == nil &&
		p.DestinataireTelephone == nil &&
		p.DestinataireAdresse == nil &&
		p.TypeColis == nil &&
		p.Poids == nil &&
		p.Description == nil &&
		p.ValeurDeclaree == nil &&
		p.Assure == nil &&
		p.ModePaiement == nil &&
		p.Statut == nil
}

type service struct {
	repo packagesRepository
}

// NewService constructs a colis service instance.
func NewService(repo packagesRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("packages repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count packages")
	}
	return total, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*PackageDTO, error) {
	row, err := buildPackage(input)
	if err != nil {
		return nil, err
	}

	code, err := NewTrackingCode()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generating tracking code")
	}
	row.CodeSuivi = code

	created, err := s.repo.CreateInSlot(ctx, row)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "creneauId does not reference an existing slot")
		case errors.Is(err, ErrSlotFull):
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "slot is at maximum capacity")
		default:
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert package")
		}
	}

	return s.Get(ctx, created.ID)
}

func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	query := params.toQuery()

	records, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list packages")
	}

	return &ListResult{
		Packages: NewPackageDTOs(records),
		Meta:     pagination.NewMeta(query.pagination, total),
	}, nil
}

func (s *service) Get(ctx context.Context, id int64) (*PackageDTO, error) {
	record, err := s.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewPackageDTO(record), nil
}

func (s *service) GetByCodeSuivi(ctx context.Context, code string) (*PackageDTO, error) {
	record, err := s.repo.FindByCodeSuivi(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "package not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load package by code")
	}
	return NewPackageDTO(record), nil
}

// Update fully replaces the mutable fields. Capacity is not re-checked even
// when the slot assignment changes; codeSuivi is never rewritten.
func (s *service) Update(ctx context.Context, id int64, input CreateInput) (*PackageDTO, error) {
	existing, err := s.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	replacement, err := buildPackage(input)
	if err != nil {
		return nil, err
	}
	replacement.ID = existing.ID
	replacement.CodeSuivi = existing.CodeSuivi
	replacement.CreatedAt = existing.CreatedAt

	if _, err := s.repo.Update(ctx, replacement); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update package")
	}
	return s.Get(ctx, id)
}

func (s *service) Patch(ctx context.Context, id int64, input PatchInput) (*PackageDTO, error) {
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

	row := existing.Package
	applyPatch(&row, input)

	if _, err := s.repo.Update(ctx, &row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: patch package")
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) (*PackageDTO, error) {
	existing, err := s.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete package")
	}
	return NewPackageDTO(existing), nil
}

func (s *service) findExisting(ctx context.Context, id int64) (*packageRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "package not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load package")
	}
	return record, nil
}

func buildPackage(input CreateInput) (*models.Package, error) {
	required := map[string]string{
		"expediteurNom":         input.ExpediteurNom,
		"expediteurTelephone":   input.ExpediteurTelephone,
		"expediteurAdresse":     input.ExpediteurAdresse,
		"destinataireNom":       input.DestinataireNom,
		"destinataireTelephone": input.DestinataireTelephone,
		"destinataireAdresse":   input.DestinataireAdresse,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, field+" is required")
		}
	}
	if input.Poids <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "poids must be positive")
	}

	typeColis := enums.PackageTypeDocument
	if input.TypeColis != "" {
		parsed, err := enums.ParsePackageType(input.TypeColis)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid typeColis")
		}
		typeColis = parsed
	}

	paiement := enums.PaymentMethodCash
	if input.ModePaiement != "" {
		parsed, err := enums.ParsePaymentMethod(input.ModePaiement)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid modePaiement")
		}
		paiement = parsed
	}

	statut := enums.PackageStatusPending
	if input.Statut != "" {
		parsed, err := enums.ParsePackageStatus(input.Statut)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid statut")
		}
		statut = parsed
	}

	var valeur float64
	if input.ValeurDeclaree != nil {
		valeur = *input.ValeurDeclaree
	}
	var assure bool
	if input.Assure != nil {
		assure = *input.Assure
	}

	return &models.Package{
		CreneauID:             input.CreneauID,
		ExpediteurNom:         input.ExpediteurNom,
		ExpediteurTelephone:   input.ExpediteurTelephone,
		ExpediteurAdresse:     input.ExpediteurAdresse,
		DestinataireNom:       input.DestinataireNom,
		DestinataireTelephone: input.DestinataireTelephone,
		DestinataireAdresse:   input.DestinataireAdresse,
		TypeColis:             typeColis,
		Poids:                 input.Poids,
		Description:           input.Description,
		ValeurDeclaree:        valeur,
		Assure:                assure,
		ModePaiement:          paiement,
		Statut:                statut,
	}, nil
}

func validatePatch(input PatchInput) error {
	if input.Poids != nil && *input.Poids <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "poids must be positive")
	}
	if input.TypeColis != nil {
		if _, err := enums.ParsePackageType(*input.TypeColis); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid typeColis")
		}
	}
	if input.ModePaiement != nil {
		if _, err := enums.ParsePaymentMethod(*input.ModePaiement); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid modePaiement")
		}
	}
	if input.Statut != nil {
		if _, err := enums.ParsePackageStatus(*input.Statut); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid statut")
		}
	}
	return nil
}

func applyPatch(row *models.Package, input PatchInput) {
	if input.CreneauIDSet {
		row.CreneauID = input.CreneauID
	}
	if input.ExpediteurNom != nil {
		row.ExpediteurNom = *input.ExpediteurNom
	}
	if input.ExpediteurTelephone != nil {
		row.ExpediteurTelephone = *input.ExpediteurTelephone
	}
	if input.ExpediteurAdresse != nil {
		row.ExpediteurAdresse = *input.ExpediteurAdresse
	}
	if input.DestinataireNom != nil {
		row.DestinataireNom = *input.DestinataireNom
	}
	if input.DestinataireTelephone != nil {
		row.DestinataireTelephone = *input.DestinataireTelephone
	}
	if input.DestinataireAdresse != nil {
		row.DestinataireAdresse = *input.DestinataireAdresse
	}
	if input.TypeColis != nil {
		row.TypeColis = enums.PackageType(*input.TypeColis)
	}
	if input.Poids != nil {
		row.Poids = *input.Poids
	}
	if input.Description != nil {
		row.Description = input.Description
	}
	if input.ValeurDeclaree != nil {
		row.ValeurDeclaree = *input.ValeurDeclaree
	}
	if input.Assure != nil {
		row.Assure = *input.Assure
	}
	if input.ModePaiement != nil {
		row.ModePaiement = enums.PaymentMethod(*input.ModePaiement)
	}
	if input.Statut != nil {
		row.Statut = enums.PackageStatus(*input.Statut)
	}
}
