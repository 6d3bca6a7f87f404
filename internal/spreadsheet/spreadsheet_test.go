package spreadsheet

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	appErrors "github.com/unclebandit/outreachly-backend/internal/errors"
)

func TestParseBirthdaySerialNumber(t *testing.T) {
	// 44927 days from the 1899-12-30 sheet epoch is 2023-01-01
	got, ok := ParseBirthday("44927")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseBirthdayLayouts(t *testing.T) {
	cases := []struct {
		cell  string
		month time.Month
		day   int
	}{
		{"1995-06-10", time.June, 10},
		{"1995/06/10", time.June, 10},
		{"06/15/1992", time.June, 15},
		{"6/5/1992", time.June, 5},
		{"January 2, 1988", time.January, 2},
	}

	for _, tc := range cases {
		got, ok := ParseBirthday(tc.cell)
		require.True(t, ok, "cell %q should parse", tc.cell)
		assert.Equal(t, tc.month, got.Month(), "cell %q", tc.cell)
		assert.Equal(t, tc.day, got.Day(), "cell %q", tc.cell)
	}
}

func TestParseBirthdayRejects(t *testing.T) {
	for _, cell := range []string{"", "   ", "not a date", "1990", "31/31/2020"} {
		_, ok := ParseBirthday(cell)
		assert.False(t, ok, "cell %q should not parse", cell)
	}
}

func TestReadRowsRoundTrip(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"phone", "birthday", "name"},
		{"01712345678", "1995-06-10", "Rahim"},
		{"1.23E+10", "", ""},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	got, err := ReadRows(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, "phone", got[0][0])
	assert.Equal(t, "01712345678", got[1][0])
	assert.Equal(t, "Rahim", got[1][2])
}

func TestReadRowsInvalidWorkbook(t *testing.T) {
	_, err := ReadRows(strings.NewReader("definitely not a workbook"))
	require.Error(t, err)

	var invalid *appErrors.ErrInvalidWorkbook
	assert.ErrorAs(t, err, &invalid)
}
