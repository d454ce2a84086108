package packages

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/oumar782/Jessback/pkg/config"
	"github.com/oumar782/Jessback/pkg/db"
	"github.com/oumar782/Jessback/pkg/db/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newPostgresClient opens a throwaway schema against the configured Postgres.
// The capacity path takes a row lock, which sqlite cannot express, so these
// tests are skipped unless JESSBACK_DB_DSN points at a real database.
func newPostgresClient(t *testing.T) *db.Client {
	t.Helper()

	dsn := os.Getenv(config.EnvDBDSN)
	if dsn == "" {
		t.Skipf("%s not set, skipping postgres repository tests", config.EnvDBDSN)
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("failed to open postgres: %v", err)
	}

	if err := conn.AutoMigrate(&models.ShipmentSlot{}, &models.Package{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		conn.Exec("DELETE FROM colis")
		conn.Exec("DELETE FROM creneaux_expedition")
	})

	return db.NewFromConn(conn)
}

func newSlot(t *testing.T, client *db.Client, capacity int) *models.ShipmentSlot {
	t.Helper()
	slot := &models.ShipmentSlot{
		DateDepart:     time.Now().Add(48 * time.Hour),
		LieuDepart:     "Conakry",
		Destination:    "Dakar",
		CapaciteMax:    capacity,
		FraisParKg:     3.5,
		PoidsMaxColis:  30,
		TypeTransport:  "standard",
		DateExpedition: time.Now().Add(72 * time.Hour),
	}
	if err := client.DB().Create(slot).Error; err != nil {
		t.Fatalf("failed to seed slot: %v", err)
	}
	return slot
}

func newPackageRow(code string, creneauID *int64) *models.Package {
	return &models.Package{
		CreneauID:             creneauID,
		CodeSuivi:             code,
		ExpediteurNom:         "Mamadou Barry",
		ExpediteurTelephone:   "+224621000111",
		ExpediteurAdresse:     "Kaloum, Conakry",
		DestinataireNom:       "Fatou Ndiaye",
		DestinataireTelephone: "+221771002003",
		DestinataireAdresse:   "Plateau, Dakar",
		TypeColis:             "document",
		Poids:                 2,
		ModePaiement:          "cash",
		Statut:                "pending",
	}
}

func TestRepository_CreateInSlot(t *testing.T) {
	client := newPostgresClient(t)
	repo := NewRepository(client)
	ctx := context.Background()

	t.Run("fills a capacity-1 slot then rejects the second create", func(t *testing.T) {
		slot := newSlot(t, client, 1)

		first := newPackageRow("COL-T1-AAAAAA", &slot.ID)
		if _, err := repo.CreateInSlot(ctx, first); err != nil {
			t.Fatalf("first create failed: %v", err)
		}

		second := newPackageRow("COL-T1-BBBBBB", &slot.ID)
		_, err := repo.CreateInSlot(ctx, second)
		if !errors.Is(err, ErrSlotFull) {
			t.Fatalf("expected ErrSlotFull, got %v", err)
		}

		var count int64
		if err := client.DB().Model(&models.Package{}).Where("creneau_id = ?", slot.ID).Count(&count).Error; err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != 1 {
			t.Fatalf("expected 1 assigned package, got %d", count)
		}
	})

	t.Run("rejects a missing slot", func(t *testing.T) {
		missing := int64(987654)
		_, err := repo.CreateInSlot(ctx, newPackageRow("COL-T2-CCCCCC", &missing))
		if !errors.Is(err, ErrSlotNotFound) {
			t.Fatalf("expected ErrSlotNotFound, got %v", err)
		}
	})

	t.Run("inserts without a slot reference", func(t *testing.T) {
		row, err := repo.CreateInSlot(ctx, newPackageRow("COL-T3-DDDDDD", nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if row.ID == 0 {
			t.Fatal("expected generated id")
		}
	})
}

func TestRepository_Enrichment(t *testing.T) {
	client := newPostgresClient(t)
	repo := NewRepository(client)
	ctx := context.Background()

	slot := newSlot(t, client, 5)
	assigned := newPackageRow("COL-T4-EEEEEE", &slot.ID)
	if _, err := repo.CreateInSlot(ctx, assigned); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	orphan := newPackageRow("COL-T4-FFFFFF", nil)
	if _, err := repo.Create(ctx, orphan); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	record, err := repo.FindByCodeSuivi(ctx, "COL-T4-EEEEEE")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if record.CreneauLieuDepart == nil || *record.CreneauLieuDepart != "Conakry" {
		t.Fatalf("expected slot enrichment, got %+v", record)
	}

	record, err = repo.FindByID(ctx, orphan.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if record.CreneauLieuDepart != nil {
		t.Fatal("expected no enrichment for an unassigned package")
	}

	if _, err := repo.FindByCodeSuivi(ctx, "col-t4-eeeeee"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected case-sensitive lookup to miss, got %v", err)
	}
}
