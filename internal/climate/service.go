package climate

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	defaultTitle        = "Evento sin nombre"
	defaultLocationName = "Ubicación desconocida"
)

// Query is one inbound historical-outlook request.
type Query struct {
	Lat          float64
	Lon          float64
	Date         time.Time
	Title        string
	LocationName string
}

// Service orchestrates the query pipeline: fetch the daily archive series,
// reduce it to one statistics record, classify it, and record the result in
// the session history.
type Service struct {
	provider  ArchiveProvider
	history   HistoryStore
	resolver  NameResolver
	yearsBack int

	now func() time.Time
}

// NewService creates a new Service. resolver may be nil, in which case
// unnamed locations fall back to a fixed placeholder.
func NewService(provider ArchiveProvider, history HistoryStore, resolver NameResolver, yearsBack int) *Service {
	if yearsBack <= 0 {
		yearsBack = 20
	}
	return &Service{
		provider:  provider,
		history:   history,
		resolver:  resolver,
		yearsBack: yearsBack,
		now:       time.Now,
	}
}

// HistoricalOutlook runs one query end to end. On any failure nothing is
// appended to the history log.
func (s *Service) HistoricalOutlook(ctx context.Context, q Query) (QueryResult, error) {
	start, end := historyRange(s.now(), s.yearsBack)

	records, err := s.provider.FetchDailyHistory(ctx, q.Lat, q.Lon, start, end)
	if err != nil {
		return QueryResult{}, fmt.Errorf("fetch daily history from %s: %w", s.provider.Name(), err)
	}

	stats, err := Aggregate(records, q.Date.Format(MonthDayLayout))
	if err != nil {
		return QueryResult{}, err
	}

	cls := Classify(stats)

	result := QueryResult{
		AvgTempMax:        formatFixed(stats.AvgTempMax, 1),
		HistoricalMinTemp: formatFixed(stats.MinTemp, 1),
		HistoricalMaxTemp: formatFixed(stats.MaxTemp, 1),
		AvgPrecip:         formatFixed(stats.AvgPrecip, 2),
		AvgWind:           formatFixed(stats.AvgWind, 1),
		Alert:             cls.Alert,
		PleasantScore:     cls.Score,
	}

	title := q.Title
	if title == "" {
		title = defaultTitle
	}

	s.history.Append(HistoryEntry{
		ID:    uuid.NewString(),
		Title: title,
		Date:  q.Date.Format("2006-01-02"),
		Location: Place{
			Lat:  q.Lat,
			Lon:  q.Lon,
			Name: s.locationName(ctx, q),
		},
		Results:     result,
		StatusColor: string(cls.Status),
	})

	return result, nil
}

// History returns the full session history, most-recent-first.
func (s *Service) History() []HistoryEntry {
	return s.history.All()
}

func (s *Service) locationName(ctx context.Context, q Query) string {
	if q.LocationName != "" {
		return q.LocationName
	}
	if s.resolver != nil {
		name, err := s.resolver.ResolveName(ctx, q.Lat, q.Lon)
		if err == nil && name != "" {
			return name
		}
		if err != nil {
			log.Printf("climate: reverse geocode (%.4f, %.4f): %v", q.Lat, q.Lon, err)
		}
	}
	return defaultLocationName
}

// historyRange returns the trailing span of complete calendar years: from
// January 1st yearsBack years ago through December 31st of last year.
func historyRange(now time.Time, yearsBack int) (time.Time, time.Time) {
	start := time.Date(now.Year()-yearsBack, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year()-1, time.December, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}

func formatFixed(v *float64, decimals int) *string {
	if v == nil {
		return nil
	}
	s := strconv.FormatFloat(*v, 'f', decimals, 64)
	return &s
}
