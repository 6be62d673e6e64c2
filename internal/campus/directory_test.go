package campus

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultDirectory(t *testing.T) {
	d := Default()
	entries := d.Entries()

	if len(entries) != 17 {
		t.Fatalf("expected 17 entries including the sentinel, got %d", len(entries))
	}
	if diff := cmp.Diff(Campus{Label: SentinelLabel}, entries[0]); diff != "" {
		t.Fatalf("first entry must be the sentinel (-want +got):\n%s", diff)
	}
}

func TestAddressFor(t *testing.T) {
	d := Default()

	tests := []struct {
		name     string
		label    string
		expected string
	}{
		{name: "sentinel", label: SentinelLabel, expected: ""},
		{name: "unknown", label: "Atlantis", expected: ""},
		{name: "empty label", label: "", expected: ""},
		{name: "bridgeview", label: "Bridgeview, IL", expected: "7350 West 87th Street, Bridgeview, IL"},
		{name: "label with trailing space", label: "CRC, IL ", expected: "222 S. Prospect Avenue, 3rd floor, Park Ridge, IL 60068"},
		{name: "label without trailing space", label: "CRC, IL", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := d.AddressFor(tt.label); result != tt.expected {
				t.Errorf("AddressFor(%q) = %q; want %q", tt.label, result, tt.expected)
			}
		})
	}
}

func TestLabelFor(t *testing.T) {
	d := Default()

	tests := []struct {
		name     string
		address  string
		expected string
	}{
		{name: "empty address", address: "", expected: SentinelLabel},
		{name: "exact match", address: "833 Ferry Street, Lafayette, IN 47901", expected: "Lafayette, IN"},
		{name: "edited address", address: "833 Ferry Street, Lafayette, IN", expected: SentinelLabel},
		{name: "whitespace differs", address: " 833 Ferry Street, Lafayette, IN 47901", expected: SentinelLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := d.LabelFor(tt.address); result != tt.expected {
				t.Errorf("LabelFor(%q) = %q; want %q", tt.address, result, tt.expected)
			}
		})
	}
}

func TestRoundTripEveryCampus(t *testing.T) {
	d := Default()
	for _, c := range d.Entries() {
		if got := d.LabelFor(d.AddressFor(c.Label)); got != c.Label {
			t.Errorf("LabelFor(AddressFor(%q)) = %q", c.Label, got)
		}
	}
}

func TestNewDirectory(t *testing.T) {
	d := NewDirectory([]Campus{
		{Label: "North", Address: "1 North St, Town, ST"},
		{Label: ""},
		{Label: SentinelLabel, Address: "ignored"},
		{Label: "North", Address: "2 Other St, Town, ST"},
	})

	want := []string{SentinelLabel, "North", "North"}
	if diff := cmp.Diff(want, d.Labels()); diff != "" {
		t.Fatalf("Labels mismatch (-want +got):\n%s", diff)
	}
	if got := d.AddressFor("North"); got != "1 North St, Town, ST" {
		t.Errorf("first duplicate should win, got %q", got)
	}
	if got := d.AddressFor(SentinelLabel); got != "" {
		t.Errorf("sentinel address must stay empty, got %q", got)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	d := Default()
	entries := d.Entries()
	entries[1].Address = "changed"

	if d.AddressFor(entries[1].Label) == "changed" {
		t.Fatal("mutating Entries() result changed the directory")
	}
}
