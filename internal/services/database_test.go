package services

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"signature_builder_echo/internal/campus"
	"signature_builder_echo/internal/models"
)

func TestCampusRowsRoundTrip(t *testing.T) {
	dir := campus.Default()
	rows := CampusRows(dir)

	if len(rows) != len(dir.Entries())-1 {
		t.Fatalf("expected %d rows without the sentinel, got %d", len(dir.Entries())-1, len(rows))
	}
	for i, r := range rows {
		if r.Label == campus.SentinelLabel {
			t.Fatalf("row %d is the sentinel", i)
		}
		if r.Position != i+1 {
			t.Errorf("row %d position = %d; want %d", i, r.Position, i+1)
		}
	}

	if diff := cmp.Diff(dir.Entries(), DirectoryFromRows(rows).Entries()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDirectoryFromRowsKeepsOrder(t *testing.T) {
	rows := []models.Campus{
		{Label: "B", Address: "2 B St, Town, ST", Position: 1},
		{Label: "A", Address: "1 A St, Town, ST", Position: 2},
	}

	want := []string{campus.SentinelLabel, "B", "A"}
	if diff := cmp.Diff(want, DirectoryFromRows(rows).Labels()); diff != "" {
		t.Fatalf("Labels mismatch (-want +got):\n%s", diff)
	}
}

func TestCloseDB(t *testing.T) {
	if err := CloseDB(nil); err != nil {
		t.Fatalf("CloseDB(nil) = %v", err)
	}

	db, err := gorm.Open(postgres.Open("host=127.0.0.1 port=1 user=sig dbname=sig sslmode=disable"), &gorm.Config{DisableAutomaticPing: true})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	if err := CloseDB(db); err != nil {
		t.Fatalf("CloseDB: %v", err)
	}
	if err := sqlDB.PingContext(context.Background()); err == nil {
		t.Error("pool should be closed")
	}
}
