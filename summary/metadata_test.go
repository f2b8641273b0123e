package summary

import (
	"fmt"
	"testing"
	"time"
)

func TestMetadata(t *testing.T) {
	doc := makeDoc(makeTextPage(
		"No. de Cuenta 0123456789",
		"Periodo DEL 01/01/2025 AL 31/01/2025",
	))

	composer := NewComposer()
	meta := composer.Metadata(doc)

	if meta.DocumentType != "bank_statement" {
		t.Errorf("Expected bank_statement, got %s", meta.DocumentType)
	}
	if meta.Bank != "BBVA" {
		t.Errorf("Expected BBVA, got %s", meta.Bank)
	}
	if meta.TotalPages != 1 {
		t.Errorf("Expected 1 page, got %d", meta.TotalPages)
	}
	if meta.AccountNumber != "0123456789" {
		t.Errorf("Expected account 0123456789, got %s", meta.AccountNumber)
	}
	if meta.Language != "es" {
		t.Errorf("Expected language es, got %s", meta.Language)
	}
	if meta.Period == nil {
		t.Fatal("Expected a statement period")
	}
	if meta.Period.Start != "2025-01-01" || meta.Period.End != "2025-01-31" {
		t.Errorf("Expected 2025-01-01..2025-01-31, got %s..%s", meta.Period.Start, meta.Period.End)
	}
}

func TestMetadataKeepsDocumentValues(t *testing.T) {
	doc := makeDoc(makeTextPage("some page"))
	doc.Metadata.Language = "en"
	doc.Metadata.TotalPages = 17

	meta := NewComposer().Metadata(doc)
	if meta.Language != "en" {
		t.Errorf("Expected reported language to win, got %s", meta.Language)
	}
	if meta.TotalPages != 17 {
		t.Errorf("Expected reported page count to win, got %d", meta.TotalPages)
	}
}

func TestMetadataNilDocument(t *testing.T) {
	meta := NewComposer().Metadata(nil)
	if meta.Bank != "BBVA" || meta.DocumentType != "bank_statement" {
		t.Errorf("Expected profile identity, got %+v", meta)
	}
	if meta.TotalPages != 0 || meta.AccountNumber != "" || meta.Period != nil {
		t.Errorf("Expected zero-valued fields, got %+v", meta)
	}
}

func TestFindPeriodDashRange(t *testing.T) {
	period := findPeriod(makeDoc(makeTextPage("01/01/2025 - 31/01/2025")))
	if period == nil {
		t.Fatal("Expected a period")
	}
	if period.Start != "2025-01-01" || period.End != "2025-01-31" {
		t.Errorf("Expected 2025-01-01..2025-01-31, got %s..%s", period.Start, period.End)
	}
}

func TestFindPeriodWithoutYear(t *testing.T) {
	period := findPeriod(makeDoc(makeTextPage("01/01 - 31/01")))
	if period == nil {
		t.Fatal("Expected a period")
	}
	year := fmt.Sprintf("%d", time.Now().Year())
	if period.Start != year+"-01-01" || period.End != year+"-01-31" {
		t.Errorf("Expected current-year dates, got %s..%s", period.Start, period.End)
	}
}

func TestFindPeriodAbsent(t *testing.T) {
	if period := findPeriod(makeDoc(makeTextPage("no dates here"))); period != nil {
		t.Errorf("Expected no period, got %+v", period)
	}
}

func TestParseDateToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"31/01/2025", "2025-01-31", true},
		{"5/1/2025", "2025-01-05", true},
		{"05/01/25", "2025-01-05", true},
		{"31/13/2025", "", false},
		{"garbage", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := parseDateToken(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseDateToken(%q) = %q, %v; expected %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseDateTokenCurrentYear(t *testing.T) {
	year := fmt.Sprintf("%d", time.Now().Year())
	tests := []struct {
		in   string
		want string
	}{
		{"02/ENE", year + "-01-02"},
		{"15/dic", year + "-12-15"},
		{"2/1", year + "-01-02"},
	}

	for _, tt := range tests {
		got, ok := parseDateToken(tt.in)
		if !ok || got != tt.want {
			t.Errorf("parseDateToken(%q) = %q, %v; expected %q", tt.in, got, ok, tt.want)
		}
	}
}
