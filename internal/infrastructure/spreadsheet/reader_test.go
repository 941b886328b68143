package spreadsheet

import (
	"testing"

	"github.com/leadcrm/crm-system/internal/core/domain"
)

func TestReader_AcceptedExtensions(t *testing.T) {
	r := NewReader()

	for _, name := range []string{"clientes.xlsx", "clientes.xls", "clientes.csv", "CLIENTES.XLSX"} {
		rows, err := r.Read(name)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if len(rows) != 4 {
			t.Fatalf("%s: expected the 4 sample rows, got %d", name, len(rows))
		}
	}
}

func TestReader_ContentIsIgnored(t *testing.T) {
	r := NewReader()

	// Same rows regardless of which file is named; nothing is ever opened.
	a, _ := r.Read("a.xlsx")
	b, _ := r.Read("b.csv")
	if len(a) != len(b) {
		t.Fatalf("row counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("row %d differs between uploads", i)
		}
	}
	if a[0].Name != "Juan Carlos Pérez" {
		t.Fatalf("unexpected first sample row: %+v", a[0])
	}
}

func TestReader_RejectsOtherExtensions(t *testing.T) {
	r := NewReader()

	for _, name := range []string{"notas.txt", "clientes.pdf", "sin_extension", "clientes.xlsx.exe"} {
		if _, err := r.Read(name); err != domain.ErrUnsupportedUpload {
			t.Fatalf("%s: expected ErrUnsupportedUpload, got %v", name, err)
		}
	}
}

func TestReader_ReturnsCopy(t *testing.T) {
	r := NewReader()

	rows, _ := r.Read("clientes.xlsx")
	rows[0].Name = "mutated"

	again, _ := r.Read("clientes.xlsx")
	if again[0].Name != "Juan Carlos Pérez" {
		t.Fatal("caller mutation must not leak into later reads")
	}
}
