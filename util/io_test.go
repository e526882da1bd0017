package util

import (
	"testing"
)

type CSVNodeTest struct {
	ID    string  `csv:"id"`
	Lat   float64 `csv:"lat"`
	Lon   float64 `csv:"lon"`
	Label string  `csv:"label"`
}

func TestCSVSimple(t *testing.T) {
	file := "./testdata/nodes.csv"

	i := 0
	for row := range ReadCSVFromFile[CSVNodeTest](file, ',') {
		if i == 0 {
			if row.ID != "n1" || row.Lat != 33.642 || row.Lon != 72.991 || row.Label != "Library" {
				t.Errorf("row = %v; want n1", row)
			}
		} else if i == 1 {
			if row.ID != "n2" || row.Lat != 33.644 || row.Lon != 72.993 || row.Label != "Cafeteria" {
				t.Errorf("row = %v; want n2", row)
			}
		} else if i == 2 {
			if row.ID != "p1" || row.Lat != 33.646 || row.Lon != 72.995 || row.Label != "Main Gate" {
				t.Errorf("row = %v; want p1", row)
			}
		} else {
			t.Errorf("too many rows")
		}
		i++
	}
	if i != 3 {
		t.Errorf("got %v rows; want 3", i)
	}
}

func TestCSVMissingColumn(t *testing.T) {
	file := "./testdata/partial.csv"

	// rows without a "label" column still map the tagged fields they have
	i := 0
	for row := range ReadCSVFromFile[CSVNodeTest](file, ',') {
		if row.Label != "" {
			t.Errorf("row.Label = %v; want empty", row.Label)
		}
		if row.ID == "" || row.Lat == 0 {
			t.Errorf("row = %v; want id and lat set", row)
		}
		i++
	}
	if i != 2 {
		t.Errorf("got %v rows; want 2", i)
	}
}

func TestCSVMalformed(t *testing.T) {
	file := "./testdata/malformed.csv"

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on malformed record")
		}
	}()
	for range ReadCSVFromFile[CSVNodeTest](file, ',') {
	}
}
