package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"medbot/internal/models"
)

const (
	drugSheet    = "Drugs"
	infoSheet    = "Info"
	exportLayout = "2006-01-02 15:04:05"
)

var drugHeaders = []string{"ID", "Brand Name", "Generic Name", "Manufacturer", "Indications", "Last Fetched", "Fresh"}

func drugRow(d models.Drug, now time.Time, ttl time.Duration) []string {
	fresh := "no"
	if d.FreshAt(now, ttl) {
		fresh = "yes"
	}
	return []string{
		d.ID,
		d.BrandName,
		d.GenericName,
		d.Manufacturer,
		d.Indications,
		d.FetchedAt.UTC().Format(exportLayout),
		fresh,
	}
}

// WriteDrugsCSV writes one header row and one row per cached record.
func WriteDrugsCSV(w io.Writer, drugs []models.Drug, now time.Time, ttl time.Duration) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(drugHeaders); err != nil {
		return err
	}
	for _, d := range drugs {
		if err := cw.Write(drugRow(d, now, ttl)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDrugsXLSX renders the cache as a workbook with a data sheet and a
// summary sheet.
func WriteDrugsXLSX(w io.Writer, drugs []models.Drug, now time.Time, ttl time.Duration) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(drugSheet); err != nil {
		return err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for i, header := range drugHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(drugSheet, cell, header); err != nil {
			return err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(drugHeaders), 1)
	if err := f.SetCellStyle(drugSheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	staleStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFCCCC"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	fresh := 0
	for rowIdx, d := range drugs {
		rowNum := rowIdx + 2
		row := drugRow(d, now, ttl)
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetSheetRow(drugSheet, cell, &row); err != nil {
			return err
		}
		if d.FreshAt(now, ttl) {
			fresh++
			continue
		}
		from := fmt.Sprintf("A%d", rowNum)
		to, _ := excelize.CoordinatesToCellName(len(drugHeaders), rowNum)
		if err := f.SetCellStyle(drugSheet, from, to, staleStyle); err != nil {
			return err
		}
	}

	widths := []float64{32, 24, 28, 28, 60, 20, 8}
	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(drugSheet, col, col, width); err != nil {
			return err
		}
	}

	if err := writeInfoSheet(f, len(drugs), fresh, now, ttl); err != nil {
		return err
	}

	index, err := f.GetSheetIndex(drugSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	return f.Write(w)
}

func writeInfoSheet(f *excelize.File, total, fresh int, now time.Time, ttl time.Duration) error {
	if _, err := f.NewSheet(infoSheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Report Generated", now.UTC().Format(exportLayout)},
		{"Total Records", total},
		{"Fresh Records", fresh},
		{"Stale Records", total - fresh},
		{"Cache TTL", ttl.String()},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(infoSheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SetColWidth(infoSheet, "A", "A", 20)
}
