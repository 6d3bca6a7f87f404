// internal/spreadsheet/spreadsheet.go
package spreadsheet

import (
    "io"
    "strconv"
    "strings"
    "time"

    "github.com/xuri/excelize/v2"

    appErrors "github.com/unclebandit/outreachly-backend/internal/errors"
)

// serialEpochOffset is the day count between the workbook date epoch
// (1899-12-30) and the Unix epoch (1970-01-01).
const serialEpochOffset = 25569

// ReadRows returns the cell rows of the first sheet of an uploaded workbook.
// Row 0 is the header and is the caller's problem.
func ReadRows(r io.Reader) ([][]string, error) {
    f, err := excelize.OpenReader(r)
    if err != nil {
        return nil, appErrors.NewInvalidWorkbook(err.Error())
    }
    defer f.Close()

    sheet := f.GetSheetName(0)
    if sheet == "" {
        return nil, appErrors.NewInvalidWorkbook("workbook has no sheets")
    }

    rows, err := f.GetRows(sheet)
    if err != nil {
        return nil, appErrors.NewInvalidWorkbook(err.Error())
    }
    return rows, nil
}

var birthdayLayouts = []string{
    "2006-01-02",
    "2006/01/02",
    "01/02/2006",
    "1/2/2006",
    "01-02-2006",
    "January 2, 2006",
    "Jan 2, 2006",
    time.RFC3339,
}

// ParseBirthday canonicalizes a birthday cell into a calendar date.
// A purely numeric string longer than 4 characters is a spreadsheet serial
// day number; everything else goes through the layout list. An unparseable
// cell returns ok=false so one bad date never fails a batch.
func ParseBirthday(cell string) (time.Time, bool) {
    s := strings.TrimSpace(cell)
    if s == "" {
        return time.Time{}, false
    }

    if len(s) > 4 && isDigits(s) {
        serial, err := strconv.Atoi(s)
        if err != nil {
            return time.Time{}, false
        }
        return serialToDate(serial), true
    }

    for _, layout := range birthdayLayouts {
        if t, err := time.Parse(layout, s); err == nil {
            return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
        }
    }
    return time.Time{}, false
}

func serialToDate(serial int) time.Time {
    epoch := time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
    return epoch.AddDate(0, 0, serial-serialEpochOffset)
}

func isDigits(s string) bool {
    for i := 0; i < len(s); i++ {
        if s[i] < '0' || s[i] > '9' {
            return false
        }
    }
    return true
}
