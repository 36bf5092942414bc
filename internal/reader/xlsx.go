package reader

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// salesColumns is the expected width of a sales row in either input format.
const salesColumns = 8

// loadXLSX reads the first sheet of a sales workbook and lowers each data
// row to the pipe-delimited form the parser expects. The header row is
// discarded like the text header line.
func loadXLSX(path string, log zerolog.Logger) []string {
	f, err := excelize.OpenFile(path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("unable to open sales workbook")
		return nil
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		log.Error().Err(err).Str("file", path).Str("sheet", sheet).Msg("unable to read sheet rows")
		return nil
	}
	if len(rows) <= 1 {
		return nil
	}

	lines := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		// excelize trims trailing empty cells; pad back to the full width
		// so a row with a missing last column still reaches validation.
		for len(row) < salesColumns {
			row = append(row, "")
		}
		lines = append(lines, strings.Join(row, "|"))
	}
	return lines
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
