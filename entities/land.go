package entities

import "time"

// GeoPolygon is a GeoJSON Polygon as drawn by the user: one outer ring of
// [lng, lat] pairs, closed (first == last). Stored as JSON text.
type GeoPolygon struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

type Land struct {
	ID       string     `gorm:"primaryKey" json:"id"`
	Name     string     `json:"name"`
	Geometry GeoPolygon `gorm:"serializer:json" json:"geometry"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
