// Package spreadsheet implementa la persistencia del catálogo y del registro de
// ventas sobre hojas de cálculo (.xlsx) o archivos CSV. Cada guardado sobrescribe
// el archivo completo.
package spreadsheet

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mala-inventario/internal/domain"
)

// dateLayout formato de Fecha en CSV y formato numérico de la columna en xlsx.
const (
	dateLayout = "2006-01-02 15:04:05"
	dateNumFmt = "yyyy-mm-dd hh:mm:ss"
)

// table contenido crudo de una hoja: encabezado y filas como texto.
type table struct {
	header []string
	rows   [][]string
}

// column devuelve el índice de la columna name (sin distinguir mayúsculas), o -1.
func (t table) column(name string) int {
	for i, h := range t.header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// codec lee y escribe tablas en un formato de archivo concreto.
// Las celdas a escribir pueden ser string, int, decimal.Decimal o time.Time.
type codec interface {
	read(path string) (table, error)
	write(path string, header []string, rows [][]any) error
}

// codecFor elige el formato por la extensión del archivo.
func codecFor(path string) (codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return xlsxCodec{}, nil
	case ".csv":
		return csvCodec{}, nil
	}
	return nil, fmt.Errorf("%w: formato de archivo no soportado %q", domain.ErrInvalidInput, path)
}

// classify traduce errores del sistema de archivos a errores de dominio.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %v", domain.ErrFileNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %v", domain.ErrPermissionOrLock, err)
	}
	return err
}

// classifyWrite traduce un fallo al crear o escribir un archivo. En escritura cualquier
// fallo del sistema de archivos (carpeta inexistente, permisos, archivo bloqueado por
// otro programa) se informa como domain.ErrPermissionOrLock.
func classifyWrite(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", domain.ErrPermissionOrLock, err)
}

// normalize completa filas cortas, quita espacios y descarta filas totalmente vacías.
func normalize(t table) table {
	out := table{header: make([]string, len(t.header))}
	for i, h := range t.header {
		out.header[i] = strings.TrimSpace(h)
	}
	for _, r := range t.rows {
		row := make([]string, len(out.header))
		blank := true
		for i := range row {
			if i < len(r) {
				row[i] = strings.TrimSpace(r[i])
			}
			if row[i] != "" {
				blank = false
			}
		}
		if !blank {
			out.rows = append(out.rows, row)
		}
	}
	return out
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// parseInt acepta enteros escritos como "5" o "5.0".
func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, fmt.Errorf("%q no es un entero", s)
	}
	return int(d.IntPart()), nil
}

var dateLayouts = []string{
	dateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
	"02/01/2006 15:04",
	"02/01/2006",
}

// parseDate acepta números de serie de Excel (celdas de fecha leídas en crudo)
// o texto en los formatos conocidos. El resultado se redondea a segundos.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return fromExcelSerial(serial)
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Round(time.Second), nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha %q no reconocida", s)
}
