package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gildware/ak-land-analysis-backend/entities"
)

const sheet = "Daily Stats"

// Workbook renders one analysis' daily series as a spreadsheet: one row per
// attempted day, stats cells left empty on no-data days.
func Workbook(a *entities.Analysis, values []entities.DailyValue) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Date", "Min", "Max", "Mean", "StDev", "Samples", "NoData"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, v := range values {
		row := i + 2
		set := func(col int, val any) error {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			return f.SetCellValue(sheet, cell, val)
		}
		if err := set(1, v.Date.Format("2006-01-02")); err != nil {
			return nil, err
		}
		if v.Stats == nil {
			continue
		}
		if err := set(2, v.Stats.Min); err != nil {
			return nil, err
		}
		if err := set(3, v.Stats.Max); err != nil {
			return nil, err
		}
		if err := set(4, v.Stats.Mean); err != nil {
			return nil, err
		}
		if err := set(5, v.Stats.StDev); err != nil {
			return nil, err
		}
		if err := set(6, v.Stats.SampleCount); err != nil {
			return nil, err
		}
		if err := set(7, v.Stats.NoDataCount); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Filename names the download after the analysis.
func Filename(a *entities.Analysis) string {
	return fmt.Sprintf("%s_%s_%s_%s.xlsx",
		a.LandID, a.IndexType,
		a.DateFrom.Format("2006-01-02"), a.DateTo.Format("2006-01-02"))
}
