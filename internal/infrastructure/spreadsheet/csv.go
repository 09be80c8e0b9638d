package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// csvCodec archivo CSV con encabezado en la primera línea.
type csvCodec struct{}

func (csvCodec) read(path string) (table, error) {
	f, err := os.Open(path)
	if err != nil {
		return table{}, classify(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err == io.EOF {
		return table{}, nil
	}
	if err != nil {
		return table{}, fmt.Errorf("csv: encabezado: %w", err)
	}
	rows, err := r.ReadAll()
	if err != nil {
		return table{}, fmt.Errorf("csv: filas: %w", err)
	}
	return normalize(table{header: header, rows: rows}), nil
}

func (csvCodec) write(path string, header []string, rows [][]any) error {
	f, err := os.Create(path)
	if err != nil {
		return classifyWrite(err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return classifyWrite(err)
	}
	for _, row := range rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = formatCell(v)
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return classifyWrite(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return classifyWrite(err)
	}
	return classifyWrite(f.Close())
}

func formatCell(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case decimal.Decimal:
		return x.String()
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format(dateLayout)
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}
