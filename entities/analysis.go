package entities

import "time"

const (
	AnalysisPending   = "pending"
	AnalysisRunning   = "running"
	AnalysisCompleted = "completed"
	AnalysisFailed    = "failed"
)

type Analysis struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	LandID    string    `gorm:"index" json:"land_id"`
	IndexType string    `json:"index_type"`
	DateFrom  time.Time `json:"date_from"`
	DateTo    time.Time `json:"date_to"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Not persisted: daily series attached when listing completed analyses.
	Result []DailyValue `gorm:"-" json:"result,omitempty"`
}

// DailyValue is one day of an analysis result; Stats is nil on no-data days.
type DailyValue struct {
	Date  time.Time   `json:"date"`
	Stats *IndexStats `json:"stats"`
}
