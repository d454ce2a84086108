package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/oumar782/Jessback/api/responses"
	"github.com/oumar782/Jessback/api/validators"
	"github.com/oumar782/Jessback/internal/reservations"
	pkgerrors "github.com/oumar782/Jessback/pkg/errors"
	"github.com/oumar782/Jessback/pkg/logger"
)

type reservationCreateRequest struct {
	Destination     string     `json:"destination" validate:"required"`
	Nom             string     `json:"nom" validate:"required"`
	Prenom          string     `json:"prenom" validate:"required"`
	Email           string     `json:"email" validate:"required,email"`
	Telephone       string     `json:"telephone" validate:"required"`
	LieuDepart      string     `json:"lieuDepart" validate:"required"`
	DateDepart      *time.Time `json:"dateDepart" validate:"required"`
	DateRetour      *time.Time `json:"dateRetour"`
	NombrePassagers int        `json:"nombrePassagers" validate:"required,gt=0"`
	Classe          string     `json:"classe" validate:"required"`
}

func (r reservationCreateRequest) toInput() reservations.CreateInput {
	input := reservations.CreateInput{
		Destination:     strings.TrimSpace(r.Destination),
		Nom:             strings.TrimSpace(r.Nom),
		Prenom:          strings.TrimSpace(r.Prenom),
		Email:           strings.TrimSpace(r.Email),
		Telephone:       strings.TrimSpace(r.Telephone),
		LieuDepart:      strings.TrimSpace(r.LieuDepart),
		DateRetour:      r.DateRetour,
		NombrePassagers: r.NombrePassagers,
		Classe:          strings.TrimSpace(r.Classe),
	}
	if r.DateDepart != nil {
		input.DateDepart = *r.DateDepart
	}
	return input
}

type reservationPatchRequest struct {
	Destination     *string    `json:"destination"`
	Nom             *string    `json:"nom"`
	Prenom          *string    `json:"prenom"`
	Email           *string    `json:"email"`
	Telephone       *string    `json:"telephone"`
	LieuDepart      *string    `json:"lieuDepart"`
	DateDepart      *time.Time `json:"dateDepart"`
	DateRetour      *time.Time `json:"dateRetour"`
	NombrePassagers *int       `json:"nombrePassagers"`
	Classe          *string    `json:"classe"`
}

func (r reservationPatchRequest) toInput() reservations.PatchInput {
	return reservations.PatchInput{
		Destination:     r.Destination,
		Nom:             r.Nom,
		Prenom:          r.Prenom,
		Email:           r.Email,
		Telephone:       r.Telephone,
		LieuDepart:      r.LieuDepart,
		DateDepart:      r.DateDepart,
		DateRetour:      r.DateRetour,
		NombrePassagers: r.NombrePassagers,
		Classe:          r.Classe,
	}
}

type reservationDeleteManyRequest struct {
	IDs []any `json:"ids" validate:"required"`
}

// coerceIDs keeps integer-valued entries and silently drops the rest.
// Numeric strings are accepted; the legacy clients send both.
func coerceIDs(raw []any) []int64 {
	ids := make([]int64, 0, len(raw))
	for _, entry := range raw {
		switch v := entry.(type) {
		case float64:
			if v == float64(int64(v)) {
				ids = append(ids, int64(v))
			}
		case string:
			if parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
				ids = append(ids, parsed)
			}
		}
	}
	return ids
}

func ReservationCount(svc reservations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := svc.Count(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCount(w, total)
	}
}

func ReservationCreate(svc reservations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload reservationCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func ReservationList(svc reservations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		basics, err := parseListBasics(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), reservations.ListParams{
			Pagination: basics.Pagination,
			Search:     basics.Search,
			SortBy:     basics.SortBy,
			SortAsc:    basics.SortAsc,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, result.Reservations, result.Meta)
	}
}

func ReservationGet(svc reservations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func ReservationUpdate(svc reservations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload reservationCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Update(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

func ReservationPatch(svc reservations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload reservationPatchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Patch(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

func ReservationDelete(svc reservations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		deleted, err := svc.Delete(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, deleted)
	}
}

func ReservationDeleteMany(svc reservations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload reservationDeleteManyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ids := coerceIDs(payload.IDs)
		if len(ids) == 0 {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "ids must contain at least one valid identifier"))
			return
		}

		result, err := svc.DeleteMany(r.Context(), ids)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
