package spreadsheet

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mala-inventario/internal/domain"
)

func TestParseInt(t *testing.T) {
	for in, want := range map[string]int{"": 0, "5": 5, "5.0": 5, "12.000": 12} {
		got, err := parseInt(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parseInt("5.5")
	assert.Error(t, err)
	_, err = parseInt("cinco")
	assert.Error(t, err)
}

func TestParseDate_TextoYSerialExcel(t *testing.T) {
	want := time.Date(2024, 3, 5, 14, 30, 15, 0, time.Local)

	got, err := parseDate("2024-03-05 14:30:15")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	got, err = parseDate("2024-03-05T14:30:15")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	serial := toExcelSerial(want)
	got, err = parseDate(strconv.FormatFloat(serial, 'f', -1, 64))
	require.NoError(t, err)
	assert.True(t, want.Equal(got), "serial %v → %v", serial, got)

	_, err = parseDate("ayer")
	assert.Error(t, err)
}

func TestCodecFor(t *testing.T) {
	c, err := codecFor("ventas.XLSX")
	require.NoError(t, err)
	assert.IsType(t, xlsxCodec{}, c)

	c, err = codecFor("data/catalogo.csv")
	require.NoError(t, err)
	assert.IsType(t, csvCodec{}, c)

	_, err = codecFor("catalogo.ods")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNormalize_DescartaFilasVacias(t *testing.T) {
	got := normalize(table{
		header: []string{" CODIGO ", "Familia"},
		rows:   [][]string{{"A "}, {"", " "}, {"B", "Blusa", "extra"}},
	})

	assert.Equal(t, []string{"CODIGO", "Familia"}, got.header)
	assert.Equal(t, [][]string{{"A", ""}, {"B", "Blusa"}}, got.rows)
}
