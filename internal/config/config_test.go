package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"signature_builder_echo/internal/campus"
	"signature_builder_echo/internal/signature"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	got := FromEnv(envMap(nil))

	want := &Config{
		Port:                    "8080",
		FirebaseCredentialsPath: "./firebase-service-account.json",
		LoginMaxAttempts:        5,
		LoginWindow:             15 * time.Minute,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	if got.AuthEnabled() || got.IsProduction() {
		t.Error("auth and production must be off by default")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	got := FromEnv(envMap(map[string]string{
		"PORT":               "9000",
		"ENV":                "production",
		"ALLOWED_DOMAIN":     "tricociuniversity.edu",
		"REDIS_URL":          "redis://localhost:6379/0",
		"LOGIN_MAX_ATTEMPTS": "3",
		"LOGIN_WINDOW":       "1h",
		"DATABASE_URL":       "postgres://localhost/sig",
	}))

	if got.Port != "9000" || !got.IsProduction() || !got.AuthEnabled() {
		t.Errorf("unexpected config %+v", got)
	}
	if got.LoginMaxAttempts != 3 || got.LoginWindow != time.Hour {
		t.Errorf("limiter settings = %d, %s", got.LoginMaxAttempts, got.LoginWindow)
	}
	if got.RedisURL != "redis://localhost:6379/0" || got.DatabaseURL != "postgres://localhost/sig" {
		t.Errorf("connection strings not read: %+v", got)
	}
}

func TestFromEnvInvalidNumbers(t *testing.T) {
	got := FromEnv(envMap(map[string]string{
		"LOGIN_MAX_ATTEMPTS": "lots",
		"LOGIN_WINDOW":       "-5m",
	}))
	if got.LoginMaxAttempts != 5 || got.LoginWindow != 15*time.Minute {
		t.Errorf("invalid values should fall back, got %d, %s", got.LoginMaxAttempts, got.LoginWindow)
	}
}

func TestParseBrandFile(t *testing.T) {
	data := []byte(`
brand:
  name: Acme College
  tagline: LEARN <em>MORE</em>
  layout: classic
  export_file_name: acme.png
campuses:
  - label: Main, ST
    address: 1 Main St, Town, ST 00001
  - label: East, ST
    address: 2 East St, 3rd floor, Town, ST 00002
`)

	brand, dir, err := ParseBrandFile(data)
	if err != nil {
		t.Fatalf("ParseBrandFile: %v", err)
	}

	want := signature.DefaultBrand()
	want.Name = "Acme College"
	want.Tagline = "LEARN <em>MORE</em>"
	want.Layout = signature.LayoutClassic
	want.ExportFileName = "acme.png"
	if diff := cmp.Diff(want, brand); diff != "" {
		t.Errorf("brand mismatch (-want +got):\n%s", diff)
	}

	wantDir := []campus.Campus{
		{Label: campus.SentinelLabel},
		{Label: "Main, ST", Address: "1 Main St, Town, ST 00001"},
		{Label: "East, ST", Address: "2 East St, 3rd floor, Town, ST 00002"},
	}
	if diff := cmp.Diff(wantDir, dir.Entries()); diff != "" {
		t.Errorf("directory mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBrandFileWithoutCampuses(t *testing.T) {
	brand, dir, err := ParseBrandFile([]byte("brand:\n  name: Solo\n"))
	if err != nil {
		t.Fatal(err)
	}
	if brand.Name != "Solo" {
		t.Errorf("Name = %q", brand.Name)
	}
	if diff := cmp.Diff(campus.Default().Entries(), dir.Entries()); diff != "" {
		t.Errorf("expected built-in directory (-want +got):\n%s", diff)
	}
}

func TestParseBrandFileInvalid(t *testing.T) {
	if _, _, err := ParseBrandFile([]byte("brand: [unclosed")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadBrand(t *testing.T) {
	brand, dir, err := LoadBrand("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(signature.DefaultBrand(), brand); diff != "" {
		t.Errorf("empty path should give the default brand (-want +got):\n%s", diff)
	}
	if len(dir.Entries()) != len(campus.Default().Entries()) {
		t.Errorf("empty path should give the default directory")
	}

	path := filepath.Join(t.TempDir(), "brand.yaml")
	if err := os.WriteFile(path, []byte("brand:\n  website: www.acme.edu\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	brand, _, err = LoadBrand(path)
	if err != nil {
		t.Fatal(err)
	}
	if brand.Website != "www.acme.edu" {
		t.Errorf("Website = %q", brand.Website)
	}

	if _, _, err := LoadBrand(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
