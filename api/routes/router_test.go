package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oumar782/Jessback/internal/packages"
	"github.com/oumar782/Jessback/internal/reservations"
	"github.com/oumar782/Jessback/internal/slots"
	"github.com/oumar782/Jessback/pkg/config"
	pkgerrors "github.com/oumar782/Jessback/pkg/errors"
	"github.com/oumar782/Jessback/pkg/logger"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubReservationService struct{}

func (stubReservationService) Count(context.Context) (int64, error) { return 3, nil }
func (stubReservationService) Create(context.Context, reservations.CreateInput) (*reservations.ReservationDTO, error) {
	return &reservations.ReservationDTO{ID: 1}, nil
}
func (stubReservationService) List(context.Context, reservations.ListParams) (*reservations.ListResult, error) {
	return &reservations.ListResult{Reservations: []reservations.ReservationDTO{}}, nil
}
func (stubReservationService) Get(context.Context, int64) (*reservations.ReservationDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "reservation not found")
}
func (stubReservationService) Update(context.Context, int64, reservations.CreateInput) (*reservations.ReservationDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "reservation not found")
}
func (stubReservationService) Patch(context.Context, int64, reservations.PatchInput) (*reservations.ReservationDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "reservation not found")
}
func (stubReservationService) Delete(context.Context, int64) (*reservations.ReservationDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "reservation not found")
}
func (stubReservationService) DeleteMany(context.Context, []int64) (*reservations.DeleteManyResult, error) {
	return &reservations.DeleteManyResult{}, nil
}

type stubSlotService struct{}

func (stubSlotService) Count(context.Context) (int64, error) { return 0, nil }
func (stubSlotService) Create(context.Context, slots.CreateInput) (*slots.SlotDTO, error) {
	return &slots.SlotDTO{ID: 1}, nil
}
func (stubSlotService) List(context.Context, slots.ListParams) (*slots.ListResult, error) {
	return &slots.ListResult{Slots: []slots.SlotDTO{}}, nil
}
func (stubSlotService) Get(context.Context, int64) (*slots.SlotDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "slot not found")
}
func (stubSlotService) Update(context.Context, int64, slots.CreateInput) (*slots.SlotDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "slot not found")
}
func (stubSlotService) Patch(context.Context, int64, slots.PatchInput) (*slots.SlotDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "slot not found")
}
func (stubSlotService) Delete(context.Context, int64) (*slots.SlotDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeConflict, "slot has 1 package(s) assigned and cannot be deleted")
}

type stubPackageService struct{}

func (stubPackageService) Count(context.Context) (int64, error) { return 0, nil }
func (stubPackageService) Create(context.Context, packages.CreateInput) (*packages.PackageDTO, error) {
	return &packages.PackageDTO{ID: 1}, nil
}
func (stubPackageService) List(context.Context, packages.ListParams) (*packages.ListResult, error) {
	return &packages.ListResult{Packages: []packages.PackageDTO{}}, nil
}
func (stubPackageService) Get(context.Context, int64) (*packages.PackageDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "package not found")
}
func (stubPackageService) GetByCodeSuivi(context.Context, string) (*packages.PackageDTO, error) {
	return &packages.PackageDTO{ID: 5, CodeSuivi: "COL-R-TRACED"}, nil
}
func (stubPackageService) Update(context.Context, int64, packages.CreateInput) (*packages.PackageDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "package not found")
}
func (stubPackageService) Patch(context.Context, int64, packages.PatchInput) (*packages.PackageDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "package not found")
}
func (stubPackageService) Delete(context.Context, int64) (*packages.PackageDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "package not found")
}

func newTestRouter() http.Handler {
	cfg := &config.Config{}
	cfg.App.Env = config.AppEnvDev
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	return NewRouter(cfg, logg, stubPinger{}, nil, stubReservationService{}, stubSlotService{}, stubPackageService{})
}

func TestRouterDispatch(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"health live", http.MethodGet, "/health/live", http.StatusOK},
		{"health ready", http.MethodGet, "/health/ready", http.StatusOK},
		{"reservations list", http.MethodGet, "/api/reservations", http.StatusOK},
		{"reservations count", http.MethodGet, "/api/reservations/count", http.StatusOK},
		{"reservation missing", http.MethodGet, "/api/reservations/99", http.StatusNotFound},
		{"reservation bad id", http.MethodGet, "/api/reservations/abc", http.StatusBadRequest},
		{"slots list", http.MethodGet, "/api/creneaux", http.StatusOK},
		{"slot delete conflict", http.MethodDelete, "/api/creneaux/7", http.StatusConflict},
		{"colis list", http.MethodGet, "/api/colis", http.StatusOK},
		{"colis tracking", http.MethodGet, "/api/colis/suivi/COL-R-TRACED", http.StatusOK},
		{"colis missing", http.MethodGet, "/api/colis/42", http.StatusNotFound},
		{"unknown route", http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tc.status {
				t.Fatalf("%s %s: expected %d, got %d: %s", tc.method, tc.path, tc.status, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRouterCountBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/reservations/count", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["total"] != 3 {
		t.Fatalf("expected total 3, got %v", body)
	}
}
