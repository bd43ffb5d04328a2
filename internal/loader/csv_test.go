package loader

import (
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"inputDate,forMonth,forYear,category,name,baseAmount,units,splitType,partyASalary,partyBSalary",
		"2025-01-05,January,2025,household,rent,2000,1,SalaryWeighted,6000,4000",
		"2025-01-07,January,2025,personal,gym,100,1,CustomAbsolute,6000,4000",
	}, "\n")

	ds, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	if len(ds.Columns) != 10 {
		t.Errorf("expected 10 columns, got %d", len(ds.Columns))
	}
	if len(ds.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(ds.Rows))
	}
	if ds.Rows[0]["name"] != "rent" {
		t.Errorf("row 0 name = %q, expected %q", ds.Rows[0]["name"], "rent")
	}
	if ds.Rows[1]["category"] != "personal" {
		t.Errorf("row 1 category = %q, expected %q", ds.Rows[1]["category"], "personal")
	}
	if missing := ds.MissingColumns(); len(missing) != 0 {
		t.Errorf("expected no missing columns, got %v", missing)
	}
}

func TestReadCSVShortRow(t *testing.T) {
	input := "inputDate,forMonth,forYear\n2025-01-05,January\n"

	ds, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(ds.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(ds.Rows))
	}
	if ds.Rows[0]["forYear"] != "" {
		t.Errorf("short row forYear = %q, expected empty", ds.Rows[0]["forYear"])
	}
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	if err == nil {
		t.Error("ReadCSV() expected error for empty input but got none")
	}
}

func TestMissingColumns(t *testing.T) {
	ds := Dataset{Columns: []string{"inputDate", "forMonth", "forYear"}}

	missing := ds.MissingColumns()
	if len(missing) != 7 {
		t.Fatalf("expected 7 missing columns, got %d: %v", len(missing), missing)
	}
	if missing[0] != "category" {
		t.Errorf("first missing column = %q, expected %q (schema order)", missing[0], "category")
	}
}
