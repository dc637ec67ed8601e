package sentinel

import "github.com/gildware/ak-land-analysis-backend/entities"

// StatsResponse is the statistics API aggregation response. Days the provider
// had no usable scene for are simply absent from Data.
type StatsResponse struct {
	Data []StatsRow `json:"data"`
}

type StatsRow struct {
	Interval Interval               `json:"interval"`
	Outputs  map[string]StatsOutput `json:"outputs"`
}

type Interval struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type StatsOutput struct {
	Bands map[string]StatsBand `json:"bands"`
}

type StatsBand struct {
	Stats *entities.IndexStats `json:"stats"`
}
