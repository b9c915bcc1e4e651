package climate

import (
	"reflect"
	"testing"
)

func TestPleasantScoreScenarios(t *testing.T) {
	tests := []struct {
		name      string
		tempMax   *float64
		precip    *float64
		radiation *float64
		want      int
	}{
		{"ideal day", fp(23.5), fp(0.3), fp(15_000_000), 100},
		{"hot wet bright", fp(30), fp(3.0), fp(30_000_000), 10},
		{"slightly cool", fp(19), fp(0.1), fp(5_000_000), 85},
		{"slightly warm boundary", fp(28), fp(0.5), fp(28_000_000), 85},
		{"cold", fp(10), fp(0), fp(0), 70},
		{"drizzle", fp(23), fp(1.0), fp(0), 80},
		{"heavy rain boundary", fp(23), fp(2.0), fp(0), 80},
		{"heavy rain", fp(23), fp(2.1), fp(0), 60},
		{"worst case across all factors", fp(40), fp(10), fp(40_000_000), 10},
		{"missing temperature is neutral", nil, fp(0.2), fp(10_000_000), 100},
		{"missing precipitation is neutral", fp(23), nil, fp(10_000_000), 100},
		{"all statistics missing", nil, nil, nil, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := HistoricalStats{
				AvgTempMax:   tt.tempMax,
				AvgPrecip:    tt.precip,
				AvgRadiation: tt.radiation,
			}
			got := PleasantScore(stats)
			if got != tt.want {
				t.Errorf("expected score %d, got %d", tt.want, got)
			}
			if got < 0 || got > 100 {
				t.Errorf("score %d out of [0,100]", got)
			}
		})
	}
}

func TestPleasantScoreDeterministic(t *testing.T) {
	stats := HistoricalStats{
		AvgTempMax:   fp(26.3),
		AvgPrecip:    fp(1.7),
		AvgRadiation: fp(29_000_000),
	}
	first := PleasantScore(stats)
	for i := 0; i < 10; i++ {
		if got := PleasantScore(stats); got != first {
			t.Fatalf("score changed between calls: %d then %d", first, got)
		}
	}
}

func TestClassifyAlertPriority(t *testing.T) {
	// Danger, cold and rain conditions all hold; the danger rule wins.
	stats := HistoricalStats{
		AvgTempMax: fp(30),
		MaxTemp:    fp(40),
		MinTemp:    fp(-2),
		AvgPrecip:  fp(10),
	}

	cls := Classify(stats)
	if cls.Alert == nil {
		t.Fatal("expected an alert")
	}
	if cls.Alert.Type != AlertDanger {
		t.Errorf("expected danger alert, got %s", cls.Alert.Type)
	}
	if cls.Status != Status(AlertDanger) {
		t.Errorf("expected danger status, got %s", cls.Status)
	}
}

func TestClassifyAlertSelection(t *testing.T) {
	tests := []struct {
		name  string
		stats HistoricalStats
		want  AlertType
	}{
		{"extreme heat", HistoricalStats{MaxTemp: fp(36)}, AlertDanger},
		{"very hot", HistoricalStats{MaxTemp: fp(29)}, AlertWarning},
		{"significant cold", HistoricalStats{MaxTemp: fp(20), MinTemp: fp(2)}, AlertInfo},
		{"likely rain", HistoricalStats{MaxTemp: fp(20), MinTemp: fp(10), AvgPrecip: fp(6)}, AlertSecondary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := Classify(tt.stats)
			if cls.Alert == nil {
				t.Fatal("expected an alert")
			}
			if cls.Alert.Type != tt.want {
				t.Errorf("expected %s alert, got %s", tt.want, cls.Alert.Type)
			}
			if cls.Alert.Title == "" || cls.Alert.Recommendation == "" {
				t.Error("alert must carry title and recommendation")
			}
			if cls.Status != Status(tt.want) {
				t.Errorf("expected status %s, got %s", tt.want, cls.Status)
			}
		})
	}
}

func TestClassifyAlertSkipsNilInputs(t *testing.T) {
	// A nil historical minimum must not trip the cold rule.
	cls := Classify(HistoricalStats{MaxTemp: fp(20), AvgPrecip: fp(1)})
	if cls.Alert != nil {
		t.Errorf("expected no alert, got %v", cls.Alert)
	}
}

func TestClassifyStatus(t *testing.T) {
	// Score 85 with no alert conditions met.
	favorable := HistoricalStats{
		AvgTempMax: fp(26.5),
		MaxTemp:    fp(27),
		MinTemp:    fp(12),
		AvgPrecip:  fp(0.2),
	}
	cls := Classify(favorable)
	if cls.Alert != nil {
		t.Fatalf("expected no alert, got %v", cls.Alert)
	}
	if cls.Score != 85 {
		t.Fatalf("expected score 85, got %d", cls.Score)
	}
	if cls.Status != StatusSuccess {
		t.Errorf("expected success status, got %s", cls.Status)
	}

	// Score below 85 with no alert falls back to normal.
	middling := HistoricalStats{
		AvgTempMax: fp(26.5),
		MaxTemp:    fp(27),
		MinTemp:    fp(12),
		AvgPrecip:  fp(1),
	}
	cls = Classify(middling)
	if cls.Alert != nil {
		t.Fatalf("expected no alert, got %v", cls.Alert)
	}
	if cls.Status != StatusNormal {
		t.Errorf("expected normal status, got %s", cls.Status)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	stats := HistoricalStats{
		AvgTempMax:   fp(31),
		MaxTemp:      fp(36),
		MinTemp:      fp(14),
		AvgPrecip:    fp(0.1),
		AvgRadiation: fp(25_000_000),
	}

	first := Classify(stats)
	second := Classify(stats)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("classification not idempotent: %+v vs %+v", first, second)
	}
}
