package reservations

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/oumar782/Jessback/pkg/db/models"
	"github.com/oumar782/Jessback/pkg/enums"
	"github.com/oumar782/Jessback/pkg/pagination"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:reservations_%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Reservation{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return conn
}

func seedReservation(t *testing.T, conn *gorm.DB, nom, email, destination string) *models.Reservation {
	t.Helper()
	row := &models.Reservation{
		Destination:     destination,
		Nom:             nom,
		Prenom:          "Aminata",
		Email:           email,
		Telephone:       "+221771234567",
		LieuDepart:      "Conakry",
		DateDepart:      time.Now().Add(24 * time.Hour),
		NombrePassagers: 1,
		Classe:          enums.TravelClassEconomy,
	}
	if err := conn.Create(row).Error; err != nil {
		t.Fatalf("failed to seed reservation: %v", err)
	}
	return row
}

func TestRepository_List(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	seedReservation(t, conn, "Diallo", "diallo@example.com", "Dakar")
	seedReservation(t, conn, "Sow", "sow@example.com", "Bamako")
	seedReservation(t, conn, "Barry", "barry@example.com", "Dakar")

	t.Run("search matches case-insensitively across columns", func(t *testing.T) {
		rows, total, err := repo.List(ctx, ListParams{
			Pagination: pagination.Params{Page: 1, Limit: 10},
			Search:     "DAK",
		}.toQuery())
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if total != 2 || len(rows) != 2 {
			t.Fatalf("expected 2 matches, got total=%d rows=%d", total, len(rows))
		}
	})

	t.Run("pagination slices while total counts everything", func(t *testing.T) {
		rows, total, err := repo.List(ctx, ListParams{
			Pagination: pagination.Params{Page: 2, Limit: 2},
			SortBy:     "id",
			SortAsc:    true,
		}.toQuery())
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if total != 3 || len(rows) != 1 {
			t.Fatalf("expected last page of 1, got total=%d rows=%d", total, len(rows))
		}
	})
}

func TestRepository_DeleteMany(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	first := seedReservation(t, conn, "Diallo", "diallo@example.com", "Dakar")
	second := seedReservation(t, conn, "Sow", "sow@example.com", "Bamako")
	kept := seedReservation(t, conn, "Barry", "barry@example.com", "Dakar")

	removed, err := repo.DeleteMany(ctx, []int64{first.ID, second.ID, 99999})
	if err != nil {
		t.Fatalf("delete many failed: %v", err)
	}
	if len(removed) != 2 {
		t.Fatalf("expected 2 removed rows, got %d", len(removed))
	}

	var total int64
	if err := conn.Model(&models.Reservation{}).Count(&total).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected only one survivor, got %d", total)
	}

	survivor, err := repo.FindByID(ctx, kept.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if survivor.Nom != "Barry" {
		t.Fatalf("unexpected survivor: %+v", survivor)
	}
}
