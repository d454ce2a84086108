package reservations

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

type reservationsRepository interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, row *models.Reservation) (*models.Reservation, error)
	List(ctx context.Context, query listQuery) ([]models.Reservation, int64, error)
	FindByID(ctx context.Context, id int64) (*models.Reservation, error)
	Update(ctx context.Context, row *models.Reservation) (*models.Reservation, error)
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) ([]models.Reservation, error)
}

// Service exposes reservation management operations.
type Service interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, input CreateInput) (*ReservationDTO, error)
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Get(ctx context.Context, id int64) (*ReservationDTO, error)
	Update(ctx context.Context, id int64, input CreateInput) (*ReservationDTO, error)
	Patch(ctx context.Context, id int64, input PatchInput) (*ReservationDTO, error)
	Delete(ctx context.Context, id int64) (*ReservationDTO, error)
	DeleteMany(ctx context.Context, ids []int64) (*DeleteManyResult, error)
}

// CreateInput holds the validated payload for create and full update.
type CreateInput struct {
	Destination     string
	Nom             string
	Prenom          string
	Email           string
	Telephone       string
	LieuDepart      string
	DateDepart      time.Time
	DateRetour      *time.Time
	NombrePassagers int
	Classe          string
}

// PatchInput holds optional mutation values; nil members are left untouched.
type PatchInput struct {
	Destination     *string
	Nom             *string
	Prenom          *string
	Email           *string
	Telephone       *string
	LieuDepart      *string
	DateDepart      *time.Time
	DateRetour      *time.Time
	NombrePassagers *int
	Classe          *string
}

// IsEmpty reports whether no recognized field is present.
func (p PatchInput) IsEmpty() bool {
	return p.Destination == nil &&
		p.Nom == nil &&
		p.Prenom == nil &&
		p.Email == nil &&
		p.Telephone == nil &&
		p.LieuDepart == nil &&
		p.DateDepart == nil &&
		p.DateRetour == nil &&
		p.NombrePassagers == nil &&
		p.Classe == nil
}

// DeleteManyResult reports a batch deletion.
type DeleteManyResult struct {
	Count        int              `json:"count"`
	Reservations []ReservationDTO `json:"reservations"`
}

type service struct {
	repo reservationsRepository
}

// NewService constructs a reservation service instance.
func NewService(repo reservationsRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reservations repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count reservations")
	}
	return total, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*ReservationDTO, error) {
	row, err := buildReservation(input)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert reservation")
	}
	return NewReservationDTO(created), nil
}

func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	query := params.toQuery()

	rows, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list reservations")
	}

	return &ListResult{
		Reservations: NewReservationDTOs(rows),
		Meta:         pagination.NewMeta(query.pagination, total),
	}, nil
}

func (s *service) Get(ctx context.Context, id int64) (*ReservationDTO, error) {
	row, err := s.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewReservationDTO(row), nil
}

func (s *service) Update(ctx context.Context, id int64, input CreateInput) (*ReservationDTO, error) {
	existing, err := s.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	replacement, err := buildReservation(input)
	if err != nil {
		return nil, err
	}
	replacement.ID = existing.ID
	replacement.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Update(ctx, replacement)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update reservation")
	}
	return NewReservationDTO(updated), nil
}

func (s *service) Patch(ctx context.Context, id int64, input PatchInput) (*ReservationDTO, error) {
	if input.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no updatable field provided")
	}

	if input.Classe != nil {
		if _, err := enums.ParseTravelClass(*input.Classe); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid classe")
		}
	}
	if input.NombrePassagers != nil && *input.NombrePassagers <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "nombrePassagers must be positive")
	}

	existing, err := s.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	applyPatch(existing, input)

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: patch reservation")
	}
	return NewReservationDTO(updated), nil
}

func (s *service) Delete(ctx context.Context, id int64) (*ReservationDTO, error) {
	existing, err := s.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete reservation")
	}
	return NewReservationDTO(existing), nil
}

func (s *service) DeleteMany(ctx context.Context, ids []int64) (*DeleteManyResult, error) {
	if len(ids) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ids must contain at least one valid identifier")
	}

	rows, err := s.repo.DeleteMany(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete reservations")
	}

	return &DeleteManyResult{
		Count:        len(rows),
		Reservations: NewReservationDTOs(rows),
	}, nil
}

func (s *service) findExisting(ctx context.Context, id int64) (*models.Reservation, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "reservation not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load reservation")
	}
	return row, nil
}

func buildReservation(input CreateInput) (*models.Reservation, error) {
	required := map[string]string{
		"destination": input.Destination,
		"nom":         input.Nom,
		"prenom":      input.Prenom,
		"email":       input.Email,
		"telephone":   input.Telephone,
		"lieuDepart":  input.LieuDepart,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, field+" is required")
		}
	}
	if input.DateDepart.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "dateDepart is required")
	}
	if input.NombrePassagers <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "nombrePassagers must be positive")
	}

	classe, err := enums.ParseTravelClass(input.Classe)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid classe")
	}

	return &models.Reservation{
		Destination:     input.Destination,
		Nom:             input.Nom,
		Prenom:          input.Prenom,
		Email:           input.Email,
		Telephone:       input.Telephone,
		LieuDepart:      input.LieuDepart,
		DateDepart:      input.DateDepart,
		DateRetour:      input.DateRetour,
		NombrePassagers: input.NombrePassagers,
		Classe:          classe,
	}, nil
}

func applyPatch(row *models.Reservation, input PatchInput) {
	if input.Destination != nil {
		row.Destination = *input.Destination
	}
	if input.Nom != nil {
		row.Nom = *input.Nom
	}
	if input.Prenom != nil {
		row.Prenom = *input.Prenom
	}
	if input.Email != nil {
		row.Email = *input.Email
	}
	if input.Telephone != nil {
		row.Telephone = *input.Telephone
	}
	if input.LieuDepart != nil {
		row.LieuDepart = *input.LieuDepart
	}
	if input.DateDepart != nil {
		row.DateDepart = *input.DateDepart
	}
	if input.DateRetour != nil {
		row.DateRetour = input.DateRetour
	}
	if input.NombrePassagers != nil {
		row.NombrePassagers = *input.NombrePassagers
	}
	if input.Classe != nil {
		// validated by the caller before the row is loaded
		row.Classe = enums.TravelClass(*input.Classe)
	}
}
