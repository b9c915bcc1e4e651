package climate

import (
	"time"
)

// DailyRecord is one day of raw archive data. The upstream archive has gaps,
// so every observation field is nullable; absent values are excluded from
// aggregation rather than treated as zero.
type DailyRecord struct {
	Date               time.Time
	TempMax            *float64 // °C
	TempMin            *float64 // °C
	Precipitation      *float64 // mm
	WindMax            *float64 // km/h
	ShortwaveRadiation *float64 // J/m²
}

// HistoricalStats summarizes all archive records matching one calendar day
// across the requested years. A field is nil when its source column was
// entirely null for the matched subset.
type HistoricalStats struct {
	AvgTempMax   *float64
	MaxTemp      *float64
	MinTemp      *float64
	AvgPrecip    *float64
	MaxPrecip    *float64
	AvgWind      *float64
	AvgRadiation *float64

	// Samples is the number of matched records.
	Samples int
}

// AlertType tags the severity of an alert. At most one alert is emitted per
// query, selected by priority.
type AlertType string

const (
	AlertDanger    AlertType = "danger"
	AlertWarning   AlertType = "warning"
	AlertInfo      AlertType = "info"
	AlertSecondary AlertType = "secondary"
)

// Alert is a human-readable warning derived from historical extremes.
type Alert struct {
	Title          string    `json:"title"`
	Recommendation string    `json:"recommendation"`
	Type           AlertType `json:"type"`
}

// Status is the coarse severity/favorability label attached to a query
// result. When an alert fires the status mirrors its type; otherwise a high
// pleasantness score yields "success" and everything else is "normal".
type Status string

const (
	StatusNormal  Status = "normal"
	StatusSuccess Status = "success"
)

// QueryResult is the client-facing payload. Numeric statistics are formatted
// as fixed-decimal strings (one decimal for temperatures and wind, two for
// precipitation); a nil field means the statistic was undefined.
type QueryResult struct {
	AvgTempMax        *string `json:"avg_temp_max"`
	HistoricalMinTemp *string `json:"historical_min_temp"`
	HistoricalMaxTemp *string `json:"historical_max_temp"`
	AvgPrecip         *string `json:"avg_precip"`
	AvgWind           *string `json:"avg_wind"`
	Alert             *Alert  `json:"alert"`
	PleasantScore     int     `json:"pleasant_score"`
}

// Place identifies the queried location.
type Place struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Name string  `json:"name"`
}

// HistoryEntry records one successful query. Entries live for the process
// lifetime and are never mutated or deleted.
type HistoryEntry struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Date        string      `json:"date"`
	Location    Place       `json:"location"`
	Results     QueryResult `json:"results"`
	StatusColor string      `json:"status_color"`
}
