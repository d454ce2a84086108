package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/oumar782/Jessback/pkg/db/models"
	"github.com/oumar782/Jessback/pkg/enums"
	pkgerrors "github.com/oumar782/Jessback/pkg/errors"
	"github.com/oumar782/Jessback/pkg/pagination"
	"gorm.io/gorm"
)

type stubRepo struct {
	countTotal int64
	countErr   error

	created   *models.Reservation
	createErr error

	listRows  []models.Reservation
	listTotal int64
	listQuery *listQuery
	listErr   error

	found   *models.Reservation
	findErr error

	updated   *models.Reservation
	updateErr error

	deletedID int64
	deleteErr error

	removedRows []models.Reservation
	removedIDs  []int64
	removeErr   error
}

func (s *stubRepo) Count(ctx context.Context) (int64, error) {
	return s.countTotal, s.countErr
}

func (s *stubRepo) Create(ctx context.Context, row *models.Reservation) (*models.Reservation, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	row.ID = 42
	s.created = row
	return row, nil
}

func (s *stubRepo) List(ctx context.Context, query listQuery) ([]models.Reservation, int64, error) {
	s.listQuery = &query
	return s.listRows, s.listTotal, s.listErr
}

func (s *stubRepo) FindByID(ctx context.Context, id int64) (*models.Reservation, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.found, nil
}

func (s *stubRepo) Update(ctx context.Context, row *models.Reservation) (*models.Reservation, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	s.updated = row
	return row, nil
}

func (s *stubRepo) Delete(ctx context.Context, id int64) error {
	s.deletedID = id
	return s.deleteErr
}

func (s *stubRepo) DeleteMany(ctx context.Context, ids []int64) ([]models.Reservation, error) {
	s.removedIDs = ids
	return s.removedRows, s.removeErr
}

func validCreateInput() CreateInput {
	return CreateInput{
		Destination:     "Dakar",
		Nom:             "Diallo",
		Prenom:          "Aminata",
		Email:           "aminata@example.com",
		Telephone:       "+221771234567",
		LieuDepart:      "Conakry",
		DateDepart:      time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC),
		NombrePassagers: 2,
		Classe:          "Economy",
	}
}

func requireCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	appErr := pkgerrors.As(err)
	if appErr == nil {
		t.Fatalf("expected app error, got %v", err)
	}
	if appErr.Code() != code {
		t.Fatalf("expected code %s, got %s", code, appErr.Code())
	}
}

func TestService_Create(t *testing.T) {
	t.Run("persists a valid reservation", func(t *testing.T) {
		repo := &stubRepo{}
		svc, _ := NewService(repo)

		dto, err := svc.Create(context.Background(), validCreateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dto.ID != 42 {
			t.Fatalf("expected id 42, got %d", dto.ID)
		}
		if repo.created.Classe != enums.TravelClassEconomy {
			t.Fatalf("expected Economy, got %s", repo.created.Classe)
		}
	})

	t.Run("rejects missing mandatory field", func(t *testing.T) {
		repo := &stubRepo{}
		svc, _ := NewService(repo)

		input := validCreateInput()
		input.Email = "  "
		_, err := svc.Create(context.Background(), input)
		requireCode(t, err, pkgerrors.CodeValidation)
		if repo.created != nil {
			t.Fatal("expected no insert on validation failure")
		}
	})

	t.Run("rejects zero dateDepart", func(t *testing.T) {
		svc, _ := NewService(&stubRepo{})

		input := validCreateInput()
		input.DateDepart = time.Time{}
		_, err := svc.Create(context.Background(), input)
		requireCode(t, err, pkgerrors.CodeValidation)
	})

	t.Run("rejects non-positive passenger count", func(t *testing.T) {
		svc, _ := NewService(&stubRepo{})

		input := validCreateInput()
		input.NombrePassagers = 0
		_, err := svc.Create(context.Background(), input)
		requireCode(t, err, pkgerrors.CodeValidation)
	})

	t.Run("rejects unknown classe", func(t *testing.T) {
		svc, _ := NewService(&stubRepo{})

		input := validCreateInput()
		input.Classe = "economy"
		_, err := svc.Create(context.Background(), input)
		requireCode(t, err, pkgerrors.CodeValidation)
	})
}

func TestService_List(t *testing.T) {
	t.Run("returns rows with pagination meta", func(t *testing.T) {
		repo := &stubRepo{
			listRows:  []models.Reservation{{ID: 1, Nom: "Diallo"}, {ID: 2, Nom: "Sow"}},
			listTotal: 12,
		}
		svc, _ := NewService(repo)

		result, err := svc.List(context.Background(), ListParams{
			Pagination: pagination.Params{Page: 2, Limit: 5},
			SortBy:     "dateDepart",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Reservations) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(result.Reservations))
		}
		if result.Meta.Total != 12 || result.Meta.TotalPages != 3 {
			t.Fatalf("unexpected meta: %+v", result.Meta)
		}
		if !result.Meta.HasPrev || !result.Meta.HasNext {
			t.Fatalf("expected middle page flags, got %+v", result.Meta)
		}
		if repo.listQuery.sortColumn != "date_depart" {
			t.Fatalf("expected date_depart sort, got %s", repo.listQuery.sortColumn)
		}
	})

	t.Run("falls back to id for unknown sort column", func(t *testing.T) {
		repo := &stubRepo{}
		svc, _ := NewService(repo)

		if _, err := svc.List(context.Background(), ListParams{SortBy: "robert'); DROP TABLE"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.listQuery.sortColumn != defaultSortColumn {
			t.Fatalf("expected fallback column, got %s", repo.listQuery.sortColumn)
		}
	})
}

func TestService_Get(t *testing.T) {
	t.Run("maps missing row to not found", func(t *testing.T) {
		svc, _ := NewService(&stubRepo{findErr: gorm.ErrRecordNotFound})

		_, err := svc.Get(context.Background(), 99)
		requireCode(t, err, pkgerrors.CodeNotFound)
	})

	t.Run("returns the row", func(t *testing.T) {
		svc, _ := NewService(&stubRepo{found: &models.Reservation{ID: 7, Nom: "Sow"}})

		dto, err := svc.Get(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dto.Nom != "Sow" {
			t.Fatalf("expected Sow, got %s", dto.Nom)
		}
	})
}

func TestService_Update(t *testing.T) {
	t.Run("replaces the row and keeps identity", func(t *testing.T) {
		created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		repo := &stubRepo{found: &models.Reservation{ID: 7, CreatedAt: created}}
		svc, _ := NewService(repo)

		dto, err := svc.Update(context.Background(), 7, validCreateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dto.ID != 7 {
			t.Fatalf("expected id 7, got %d", dto.ID)
		}
		if !repo.updated.CreatedAt.Equal(created) {
			t.Fatal("expected createdAt preserved on full update")
		}
	})

	t.Run("validates before touching storage", func(t *testing.T) {
		repo := &stubRepo{found: &models.Reservation{ID: 7}}
		svc, _ := NewService(repo)

		input := validCreateInput()
		input.Classe = "Premium"
		_, err := svc.Update(context.Background(), 7, input)
		requireCode(t, err, pkgerrors.CodeValidation)
	})
}

func TestService_Patch(t *testing.T) {
	t.Run("applies only provided fields", func(t *testing.T) {
		repo := &stubRepo{found: &models.Reservation{
			ID:              7,
			Nom:             "Diallo",
			NombrePassagers: 2,
			Classe:          enums.TravelClassEconomy,
		}}
		svc, _ := NewService(repo)

		nom := "Barry"
		classe := "Business"
		dto, err := svc.Patch(context.Background(), 7, PatchInput{Nom: &nom, Classe: &classe})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dto.Nom != "Barry" || dto.Classe != "Business" {
			t.Fatalf("unexpected patched row: %+v", dto)
		}
		if repo.updated.NombrePassagers != 2 {
			t.Fatal("expected untouched field to survive patch")
		}
	})

	t.Run("rejects empty patch", func(t *testing.T) {
		svc, _ := NewService(&stubRepo{})

		_, err := svc.Patch(context.Background(), 7, PatchInput{})
		requireCode(t, err, pkgerrors.CodeValidation)
	})

	t.Run("rejects invalid classe without loading the row", func(t *testing.T) {
		repo := &stubRepo{findErr: gorm.ErrRecordNotFound}
		svc, _ := NewService(repo)

		classe := "first" // lowercase is not accepted
		_, err := svc.Patch(context.Background(), 7, PatchInput{Classe: &classe})
		requireCode(t, err, pkgerrors.CodeValidation)
	})

	t.Run("rejects non-positive passenger count", func(t *testing.T) {
		svc, _ := NewService(&stubRepo{})

		n := -1
		_, err := svc.Patch(context.Background(), 7, PatchInput{NombrePassagers: &n})
		requireCode(t, err, pkgerrors.CodeValidation)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("returns the removed row", func(t *testing.T) {
		repo := &stubRepo{found: &models.Reservation{ID: 7, Nom: "Sow"}}
		svc, _ := NewService(repo)

		dto, err := svc.Delete(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dto.Nom != "Sow" || repo.deletedID != 7 {
			t.Fatalf("unexpected delete result: %+v", dto)
		}
	})

	t.Run("missing row is not found", func(t *testing.T) {
		svc, _ := NewService(&stubRepo{findErr: gorm.ErrRecordNotFound})

		_, err := svc.Delete(context.Background(), 99)
		requireCode(t, err, pkgerrors.CodeNotFound)
	})
}

func TestService_DeleteMany(t *testing.T) {
	t.Run("rejects empty id set", func(t *testing.T) {
		svc, _ := NewService(&stubRepo{})

		_, err := svc.DeleteMany(context.Background(), nil)
		requireCode(t, err, pkgerrors.CodeValidation)
	})

	t.Run("reports removed rows", func(t *testing.T) {
		repo := &stubRepo{removedRows: []models.Reservation{{ID: 1}, {ID: 3}}}
		svc, _ := NewService(repo)

		result, err := svc.DeleteMany(context.Background(), []int64{1, 3, 99})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Count != 2 {
			t.Fatalf("expected 2 removals, got %d", result.Count)
		}
		if len(repo.removedIDs) != 3 {
			t.Fatalf("expected ids forwarded, got %v", repo.removedIDs)
		}
	})
}
