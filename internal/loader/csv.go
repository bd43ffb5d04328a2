// Package loader acquires raw tabular datasets from CSV sources. It performs
// no validation beyond CSV well-formedness; schema checks belong to the
// validate package.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/guillemsala/expenses-app/pkg/constants"
)

// Row is one raw dataset row keyed by column name. Cells are untyped strings;
// absent columns read as "".
type Row map[string]string

// Dataset is an ordered sequence of raw rows together with the header that
// produced them.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// MissingColumns reports which core columns are absent from the dataset
// header, in schema order.
func (ds Dataset) MissingColumns() []string {
	present := make(map[string]bool, len(ds.Columns))
	for _, col := range ds.Columns {
		present[col] = true
	}

	var missing []string
	for _, col := range constants.CoreColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

// ReadCSV parses a CSV stream into a Dataset. The first record is the header;
// short rows leave their trailing cells empty rather than failing.
func ReadCSV(r io.Reader) (Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return Dataset{}, fmt.Errorf("dataset is empty")
	}
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to read CSV header, %s", err)
	}

	ds := Dataset{Columns: header}
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Dataset{}, fmt.Errorf("failed to read CSV row %d, %s", len(ds.Rows), err)
		}

		row := make(Row, len(header))
		for i, col := range header {
			if i < len(cells) {
				row[col] = cells[i]
			}
		}
		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}

// ReadFile loads a Dataset from a CSV file on disk.
func ReadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to open dataset at %s, %s", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	return ReadCSV(f)
}
