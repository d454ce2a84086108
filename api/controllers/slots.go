package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/oumar782/Jessback/api/responses"
	"github.com/oumar782/Jessback/api/validators"
	"github.com/oumar782/Jessback/internal/slots"
	"github.com/oumar782/Jessback/pkg/logger"
)

type slotCreateRequest struct {
	DateDepart     *time.Time `json:"dateDepart" validate:"required"`
	LieuDepart     string     `json:"lieuDepart" validate:"required"`
	Destination    string     `json:"destination" validate:"required"`
	CapaciteMax    int        `json:"capaciteMax" validate:"required,gt=0"`
	FraisParKg     float64    `json:"fraisParKg" validate:"required,gt=0"`
	PoidsMaxColis  float64    `json:"poidsMaxColis" validate:"required,gt=0"`
	TypeTransport  string     `json:"typeTransport"`
	DateExpedition *time.Time `json:"dateExpedition" validate:"required"`
}

func (r slotCreateRequest) toInput() slots.CreateInput {
	input := slots.CreateInput{
		LieuDepart:    strings.TrimSpace(r.LieuDepart),
		Destination:   strings.TrimSpace(r.Destination),
		CapaciteMax:   r.CapaciteMax,
		FraisParKg:    r.FraisParKg,
		PoidsMaxColis: r.PoidsMaxColis,
		TypeTransport: strings.TrimSpace(r.TypeTransport),
	}
	if r.DateDepart != nil {
		input.DateDepart = *r.DateDepart
	}
	if r.DateExpedition != nil {
		input.DateExpedition = *r.DateExpedition
	}
	return input
}

type slotPatchRequest struct {
	DateDepart     *time.Time `json:"dateDepart"`
	LieuDepart     *string    `json:"lieuDepart"`
	Destination    *string    `json:"destination"`
	CapaciteMax    *int       `json:"capaciteMax"`
	FraisParKg     *float64   `json:"fraisParKg"`
	PoidsMaxColis  *float64   `json:"poidsMaxColis"`
	TypeTransport  *string    `json:"typeTransport"`
	DateExpedition *time.Time `json:"dateExpedition"`
}

func (r slotPatchRequest) toInput() slots.PatchInput {
	return slots.PatchInput{
		DateDepart:     r.DateDepart,
		LieuDepart:     r.LieuDepart,
		Destination:    r.Destination,
		CapaciteMax:    r.CapaciteMax,
		FraisParKg:     r.FraisParKg,
		PoidsMaxColis:  r.PoidsMaxColis,
		TypeTransport:  r.TypeTransport,
		DateExpedition: r.DateExpedition,
	}
}

func SlotCount(svc slots.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := svc.Count(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCount(w, total)
	}
}

func SlotCreate(svc slots.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload slotCreateRequest
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

func SlotList(svc slots.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		basics, err := parseListBasics(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), slots.ListParams{
			Pagination: basics.Pagination,
			Search:     basics.Search,
			SortBy:     basics.SortBy,
			SortAsc:    basics.SortAsc,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, result.Slots, result.Meta)
	}
}

func SlotGet(svc slots.Service, logg *logger.Logger) http.HandlerFunc {
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

func SlotUpdate(svc slots.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload slotCreateRequest
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

func SlotPatch(svc slots.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload slotPatchRequest
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

func SlotDelete(svc slots.Service, logg *logger.Logger) http.HandlerFunc {
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
