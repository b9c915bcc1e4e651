package climate

import "errors"

// ErrNoHistoricalData is returned when no archive record matches the
// requested calendar day.
var ErrNoHistoricalData = errors.New("no historical data for requested day")

// MonthDayLayout is the time layout for a year-independent calendar day.
const MonthDayLayout = "01-02"

type column func(DailyRecord) *float64

// Aggregate filters records to those whose month-day matches monthDay
// (ignoring year) and reduces the subset to per-column statistics. Null
// fields are skipped per column; a column that is null across the whole
// subset produces a nil statistic.
func Aggregate(records []DailyRecord, monthDay string) (HistoricalStats, error) {
	var matched []DailyRecord
	for _, r := range records {
		if r.Date.Format(MonthDayLayout) == monthDay {
			matched = append(matched, r)
		}
	}

	if len(matched) == 0 {
		return HistoricalStats{}, ErrNoHistoricalData
	}

	tempMax := func(r DailyRecord) *float64 { return r.TempMax }
	tempMin := func(r DailyRecord) *float64 { return r.TempMin }
	precip := func(r DailyRecord) *float64 { return r.Precipitation }
	wind := func(r DailyRecord) *float64 { return r.WindMax }
	radiation := func(r DailyRecord) *float64 { return r.ShortwaveRadiation }

	return HistoricalStats{
		AvgTempMax:   mean(matched, tempMax),
		MaxTemp:      maximum(matched, tempMax),
		MinTemp:      minimum(matched, tempMin),
		AvgPrecip:    mean(matched, precip),
		MaxPrecip:    maximum(matched, precip),
		AvgWind:      mean(matched, wind),
		AvgRadiation: mean(matched, radiation),
		Samples:      len(matched),
	}, nil
}

func mean(records []DailyRecord, col column) *float64 {
	var sum float64
	var n int
	for _, r := range records {
		if v := col(r); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

func maximum(records []DailyRecord, col column) *float64 {
	var best *float64
	for _, r := range records {
		v := col(r)
		if v == nil {
			continue
		}
		if best == nil || *v > *best {
			val := *v
			best = &val
		}
	}
	return best
}

func minimum(records []DailyRecord, col column) *float64 {
	var best *float64
	for _, r := range records {
		v := col(r)
		if v == nil {
			continue
		}
		if best == nil || *v < *best {
			val := *v
			best = &val
		}
	}
	return best
}
