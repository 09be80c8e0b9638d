package spreadsheet

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// excelEpoch origen de los números de serie de fecha de Excel (sistema 1900).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// xlsxCodec lee la primera hoja del libro y escribe un libro nuevo de una sola hoja.
type xlsxCodec struct{}

func (xlsxCodec) read(path string) (table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return table{}, classify(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return table{}, nil
	}
	// Valores crudos: números sin formato y fechas como número de serie.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return table{}, fmt.Errorf("xlsx: leer hoja %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return table{}, nil
	}
	return normalize(table{header: rows[0], rows: rows[1:]}), nil
}

func (xlsxCodec) write(path string, header []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("xlsx: encabezado: %w", err)
	}

	dateStyle := -1
	for r, row := range rows {
		values := make([]any, len(row))
		for c, v := range row {
			switch x := v.(type) {
			case decimal.Decimal:
				values[c] = x.InexactFloat64()
			case time.Time:
				if x.IsZero() {
					values[c] = ""
					continue
				}
				values[c] = toExcelSerial(x)
				if dateStyle < 0 {
					numFmt := dateNumFmt
					style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
					if err != nil {
						return fmt.Errorf("xlsx: estilo de fecha: %w", err)
					}
					dateStyle = style
				}
			default:
				values[c] = v
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("xlsx: fila %d: %w", r+2, err)
		}
		if dateStyle >= 0 {
			for c, v := range row {
				if _, ok := v.(time.Time); !ok {
					continue
				}
				dc, _ := excelize.CoordinatesToCellName(c+1, r+2)
				if err := f.SetCellStyle(sheet, dc, dc, dateStyle); err != nil {
					return fmt.Errorf("xlsx: estilo de fecha: %w", err)
				}
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return classifyWrite(err)
	}
	return nil
}

// toExcelSerial convierte la hora local de t en número de serie de Excel.
func toExcelSerial(t time.Time) float64 {
	wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	return wall.Sub(excelEpoch).Seconds() / 86400
}

// fromExcelSerial interpreta el número de serie como hora local.
func fromExcelSerial(serial float64) (time.Time, error) {
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, err
	}
	t = t.Round(time.Second)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local), nil
}
