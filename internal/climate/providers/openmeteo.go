package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/eventclima/eventclima/internal/climate"
	"github.com/eventclima/eventclima/internal/metrics"
)

// dailyVariables is the fixed set of daily series requested from the archive.
const dailyVariables = "temperature_2m_max,temperature_2m_min,precipitation_sum,windspeed_10m_max,shortwave_radiation_sum"

// OpenMeteoArchive implements climate.ArchiveProvider against the Open-Meteo
// historical archive API. It requires no API key.
type OpenMeteoArchive struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoArchive(client *http.Client) *OpenMeteoArchive {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo-archive",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenMeteoArchive{
		name:    "openmeteo-archive",
		baseURL: "https://archive-api.open-meteo.com/v1/archive",
		client:  client,
		circuit: cb,
	}
}

func (p *OpenMeteoArchive) Name() string {
	return p.name
}

// FetchDailyHistory requests the daily series for [start, end] and converts
// the archive's parallel arrays into DailyRecord rows. JSON nulls in any
// series stay nil on the record.
func (p *OpenMeteoArchive) FetchDailyHistory(ctx context.Context, lat, lon float64, start, end time.Time) ([]climate.DailyRecord, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", lat))
	values.Set("longitude", fmt.Sprintf("%f", lon))
	values.Set("start_date", start.Format("2006-01-02"))
	values.Set("end_date", end.Format("2006-01-02"))
	values.Set("daily", dailyVariables)

	u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	resp, err := doRequest(p.client, p.circuit, req)
	metrics.ArchiveLatency.WithLabelValues(p.name).Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.ArchiveCallsTotal.WithLabelValues(p.name, "error").Inc()
		return nil, err
	}
	defer resp.Body.Close()
	metrics.ArchiveCallsTotal.WithLabelValues(p.name, "ok").Inc()

	var payload struct {
		Daily struct {
			Time               []string   `json:"time"`
			TempMax            []*float64 `json:"temperature_2m_max"`
			TempMin            []*float64 `json:"temperature_2m_min"`
			Precipitation      []*float64 `json:"precipitation_sum"`
			WindMax            []*float64 `json:"windspeed_10m_max"`
			ShortwaveRadiation []*float64 `json:"shortwave_radiation_sum"`
		} `json:"daily"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode archive response: %w", err)
	}

	records := make([]climate.DailyRecord, 0, len(payload.Daily.Time))
	for i, ds := range payload.Daily.Time {
		date, err := time.Parse("2006-01-02", ds)
		if err != nil {
			continue
		}
		records = append(records, climate.DailyRecord{
			Date:               date,
			TempMax:            at(payload.Daily.TempMax, i),
			TempMin:            at(payload.Daily.TempMin, i),
			Precipitation:      at(payload.Daily.Precipitation, i),
			WindMax:            at(payload.Daily.WindMax, i),
			ShortwaveRadiation: at(payload.Daily.ShortwaveRadiation, i),
		})
	}

	return records, nil
}

// at guards against the archive returning series shorter than the time axis.
func at(vals []*float64, i int) *float64 {
	if i < len(vals) {
		return vals[i]
	}
	return nil
}
