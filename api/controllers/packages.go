package controllers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oumar782/Jessback/api/responses"
	"github.com/oumar782/Jessback/api/validators"
	"github.com/oumar782/Jessback/internal/packages"
	"github.com/oumar782/Jessback/pkg/enums"
	pkgerrors "github.com/oumar782/Jessback/pkg/errors"
	"github.com/oumar782/Jessback/pkg/logger"
	"github.com/oumar782/Jessback/pkg/redis"
)

// trackCacheTTL bounds how stale a cached tracking lookup can be.
const trackCacheTTL = 30 * time.Second

// optionalInt64 distinguishes an absent creneauId from an explicit null:
// null clears the slot assignment, absence leaves it alone.
type optionalInt64 struct {
	Set   bool
	Value *int64
}

func (o *optionalInt64) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var value int64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	o.Value = &value
	return nil
}

type packageCreateRequest struct {
	CreneauID             *int64   `json:"creneauId"`
	ExpediteurNom         string   `json:"expediteurNom" validate:"required"`
	ExpediteurTelephone   string   `json:"expediteurTelephone" validate:"required"`
	ExpediteurAdresse     string   `json:"expediteurAdresse" validate:"required"`
	DestinataireNom       string   `json:"destinataireNom" validate:"required"`
	DestinataireTelephone string   `json:"destinataireTelephone" validate:"required"`
	DestinataireAdresse   string   `json:"destinataireAdresse" validate:"required"`
	TypeColis             string   `json:"typeColis"`
	Poids                 float64  `json:"poids" validate:"required,gt=0"`
	Description           *string  `json:"description"`
	ValeurDeclaree        *float64 `json:"valeurDeclaree"`
	Assure                *bool    `json:"assure"`
	ModePaiement          string   `json:"modePaiement"`
	Statut                string   `json:"statut"`
}

func (r packageCreateRequest) toInput() packages.CreateInput {
	return packages.CreateInput{
		CreneauID:             r.CreneauID,
		ExpediteurNom:         strings.TrimSpace(r.ExpediteurNom),
		ExpediteurTelephone:   strings.TrimSpace(r.ExpediteurTelephone),
		ExpediteurAdresse:     strings.TrimSpace(r.ExpediteurAdresse),
		DestinataireNom:       strings.TrimSpace(r.DestinataireNom),
		DestinataireTelephone: strings.TrimSpace(r.DestinataireTelephone),
		DestinataireAdresse:   strings.TrimSpace(r.DestinataireAdresse),
		TypeColis:             strings.TrimSpace(r.TypeColis),
		Poids:                 r.Poids,
		Description:           r.Description,
		ValeurDeclaree:        r.ValeurDeclaree,
		Assure:                r.Assure,
		ModePaiement:          strings.TrimSpace(r.ModePaiement),
		Statut:                strings.TrimSpace(r.Statut),
	}
}

type packagePatchRequest struct {
	CreneauID             optionalInt64 `json:"creneauId"`
	ExpediteurNom         *string       `json:"expediteurNom"`
	ExpediteurTelephone   *string       `json:"expediteurTelephone"`
	ExpediteurAdresse     *string       `json:"expediteurAdresse"`
	DestinataireNom       *string       `json:"destinataireNom"`
	DestinataireTelephone *string       `json:"destinataireTelephone"`
	DestinataireAdresse   *string       `json:"destinataireAdresse"`
	TypeColis             *string       `json:"typeColis"`
	Poids                 *float64      `json:"poids"`
	Description           *string       `json:"description"`
	ValeurDeclaree        *float64      `json:"valeurDeclaree"`
	Assure                *bool         `json:"assure"`
	ModePaiement          *string       `json:"modePaiement"`
	Statut                *string       `json:"statut"`
}

func (r packagePatchRequest) toInput() packages.PatchInput {
	return packages.PatchInput{
		CreneauID:             r.CreneauID.Value,
		CreneauIDSet:          r.CreneauID.Set,
		ExpediteurNom:         r.ExpediteurNom,
		ExpediteurTelephone:   r.ExpediteurTelephone,
		ExpediteurAdresse:     r.ExpediteurAdresse,
		DestinataireNom:       r.DestinataireNom,
		DestinataireTelephone: r.DestinataireTelephone,
		DestinataireAdresse:   r.DestinataireAdresse,
		TypeColis:             r.TypeColis,
		Poids:                 r.Poids,
		Description:           r.Description,
		ValeurDeclaree:        r.ValeurDeclaree,
		Assure:                r.Assure,
		ModePaiement:          r.ModePaiement,
		Statut:                r.Statut,
	}
}

func PackageCount(svc packages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := svc.Count(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCount(w, total)
	}
}

func PackageCreate(svc packages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload packageCreateRequest
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

func PackageList(svc packages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		basics, err := parseListBasics(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params := packages.ListParams{
			Pagination: basics.Pagination,
			Search:     basics.Search,
			SortBy:     basics.SortBy,
			SortAsc:    basics.SortAsc,
		}

		if raw := strings.TrimSpace(r.URL.Query().Get("statut")); raw != "" {
			statut, err := enums.ParsePackageStatus(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid statut filter"))
				return
			}
			params.Statut = &statut
		}

		result, err := svc.List(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, result.Packages, result.Meta)
	}
}

func PackageGet(svc packages.Service, logg *logger.Logger) http.HandlerFunc {
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

// PackageTrack serves the public tracking lookup. Hits are answered from
// redis for trackCacheTTL when a cache client is configured.
func PackageTrack(svc packages.Service, cache *redis.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := strings.TrimSpace(chi.URLParam(r, "code"))
		if code == "" {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "code is required"))
			return
		}

		cacheKey := "colis:suivi:" + code
		if cache != nil {
			if raw, err := cache.Get(r.Context(), cacheKey); err == nil {
				responses.WriteRawJSON(w, http.StatusOK, []byte(raw))
				return
			}
		}

		dto, err := svc.GetByCodeSuivi(r.Context(), code)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if cache != nil {
			if raw, err := json.Marshal(dto); err == nil {
				if err := cache.Set(r.Context(), cacheKey, string(raw), trackCacheTTL); err != nil {
					logg.Warn(r.Context(), "failed to cache tracking lookup")
				}
			}
		}
		responses.WriteSuccess(w, dto)
	}
}

func PackageUpdate(svc packages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload packageCreateRequest
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

func PackagePatch(svc packages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload packagePatchRequest
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

func PackageDelete(svc packages.Service, logg *logger.Logger) http.HandlerFunc {
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
