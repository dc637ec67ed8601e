package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gildware/ak-land-analysis-backend/entities"
)

func TestWorkbook(t *testing.T) {
	day := func(s string) time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return d
	}
	a := &entities.Analysis{
		LandID: "land-1", IndexType: "NDVI",
		DateFrom: day("2024-03-01"), DateTo: day("2024-03-02"),
	}
	values := []entities.DailyValue{
		{Date: day("2024-03-01"), Stats: &entities.IndexStats{Min: 0.1, Max: 0.8, Mean: 0.45, StDev: 0.12, SampleCount: 100, NoDataCount: 3}},
		{Date: day("2024-03-02"), Stats: nil},
	}

	f, err := Workbook(a, values)
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Date", get("A1"))
	assert.Equal(t, "Mean", get("D1"))

	assert.Equal(t, "2024-03-01", get("A2"))
	assert.Equal(t, "0.45", get("D2"))
	assert.Equal(t, "100", get("F2"))

	// No-data day keeps its date but empty stats cells.
	assert.Equal(t, "2024-03-02", get("A3"))
	assert.Equal(t, "", get("D3"))
}

func TestFilename(t *testing.T) {
	day := func(s string) time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return d
	}
	a := &entities.Analysis{
		LandID: "land-1", IndexType: "NDWI",
		DateFrom: day("2024-03-01"), DateTo: day("2024-03-05"),
	}
	assert.Equal(t, "land-1_NDWI_2024-03-01_2024-03-05.xlsx", Filename(a))
}
