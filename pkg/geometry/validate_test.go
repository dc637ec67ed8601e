package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gildware/ak-land-analysis-backend/entities"
)

func polygon(coords [][2]float64) entities.GeoPolygon {
	return entities.GeoPolygon{Type: "Polygon", Coordinates: [][][2]float64{coords}}
}

// ~100m x ~100m square near Bangkok.
func validSquare() entities.GeoPolygon {
	return polygon([][2]float64{
		{100.5000, 13.7000},
		{100.5009, 13.7000},
		{100.5009, 13.7009},
		{100.5000, 13.7009},
		{100.5000, 13.7000},
	})
}

func TestValidateOK(t *testing.T) {
	assert.NoError(t, Validate(validSquare()))
}

func TestValidateRejectsNonPolygon(t *testing.T) {
	p := validSquare()
	p.Type = "MultiPolygon"
	assert.ErrorIs(t, Validate(p), ErrNotPolygon)

	assert.ErrorIs(t, Validate(entities.GeoPolygon{Type: "Polygon"}), ErrNotPolygon)
}

func TestValidateRejectsShortRing(t *testing.T) {
	p := polygon([][2]float64{
		{100.50, 13.70}, {100.51, 13.70}, {100.50, 13.70},
	})
	assert.ErrorIs(t, Validate(p), ErrRingTooShort)
}

func TestValidateRejectsOpenRing(t *testing.T) {
	p := polygon([][2]float64{
		{100.5000, 13.7000},
		{100.5009, 13.7000},
		{100.5009, 13.7009},
		{100.5000, 13.7009},
	})
	assert.ErrorIs(t, Validate(p), ErrRingNotClosed)
}

func TestValidateRejectsOutOfBounds(t *testing.T) {
	p := polygon([][2]float64{
		{190.0, 13.70}, {100.51, 13.70}, {100.51, 13.71}, {190.0, 13.70},
	})
	assert.Error(t, Validate(p))
}

func TestValidateRejectsSelfIntersection(t *testing.T) {
	// Bowtie.
	p := polygon([][2]float64{
		{100.5000, 13.7000},
		{100.5009, 13.7009},
		{100.5009, 13.7000},
		{100.5000, 13.7009},
		{100.5000, 13.7000},
	})
	assert.ErrorIs(t, Validate(p), ErrSelfIntersecting)
}

func TestValidateRejectsTinyArea(t *testing.T) {
	// ~1m x 1m.
	p := polygon([][2]float64{
		{100.500000, 13.700000},
		{100.500009, 13.700000},
		{100.500009, 13.700009},
		{100.500000, 13.700009},
		{100.500000, 13.700000},
	})
	assert.ErrorIs(t, Validate(p), ErrTooSmall)
}
