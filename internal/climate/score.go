package climate

import "fmt"

// Classification is the outcome of scoring one HistoricalStats record.
type Classification struct {
	Score  int
	Alert  *Alert
	Status Status
}

// Classify derives the pleasantness score, at most one prioritized alert and
// the status tag from aggregated statistics. It is a pure function: identical
// stats always produce an identical classification.
func Classify(stats HistoricalStats) Classification {
	score := PleasantScore(stats)
	alert := selectAlert(stats)

	status := StatusNormal
	if alert != nil {
		status = Status(alert.Type)
	} else if score >= 85 {
		status = StatusSuccess
	}

	return Classification{Score: score, Alert: alert, Status: status}
}

// PleasantScore computes a 0-100 comfort heuristic from average max
// temperature, average precipitation and a sun-exposure proxy. Deductions are
// additive and independent. A nil input skips its factor entirely (no
// deduction), per the null-propagation policy: an undefined statistic must
// not be scored as if it were zero.
func PleasantScore(stats HistoricalStats) int {
	score := 100

	if t := stats.AvgTempMax; t != nil {
		switch {
		case *t >= 22 && *t <= 25:
			// ideal band, no deduction
		case (*t >= 18 && *t < 22) || (*t > 25 && *t <= 28):
			score -= 15
		default:
			score -= 30
		}
	}

	if p := stats.AvgPrecip; p != nil {
		switch {
		case *p > 2.0:
			score -= 40
		case *p > 0.5:
			score -= 20
		}
	}

	// Radiation arrives in J/m²; normalize to MJ/m² as a UV proxy.
	if rad := stats.AvgRadiation; rad != nil {
		if *rad/1_000_000 > 28 {
			score -= 20
		}
	}

	if score < 0 {
		score = 0
	}
	return score
}

// selectAlert evaluates alert rules in strict priority order and returns the
// first match. Rules whose input statistic is nil are skipped.
func selectAlert(stats HistoricalStats) *Alert {
	switch {
	case stats.MaxTemp != nil && *stats.MaxTemp > 35:
		return &Alert{
			Title:          "¡CUIDADO! CALOR EXTREMO HISTÓRICO",
			Recommendation: fmt.Sprintf("Este día ha alcanzado picos de hasta %.0f°C. Es crucial llevar protección solar y beber abundante agua.", *stats.MaxTemp),
			Type:           AlertDanger,
		}
	case stats.MaxTemp != nil && *stats.MaxTemp > 28:
		return &Alert{
			Title:          "PRECAUCIÓN: DÍA MUY CALUROSO",
			Recommendation: fmt.Sprintf("Se han registrado temperaturas de hasta %.0f°C. No olvides llevar gorra y mantenerte hidratado.", *stats.MaxTemp),
			Type:           AlertWarning,
		}
	case stats.MinTemp != nil && *stats.MinTemp < 5:
		return &Alert{
			Title:          "AVISO: FRÍO SIGNIFICATIVO REGISTRADO",
			Recommendation: fmt.Sprintf("Se han registrado temperaturas de hasta %.0f°C. Se recomienda llevar abrigo.", *stats.MinTemp),
			Type:           AlertInfo,
		}
	case stats.AvgPrecip != nil && *stats.AvgPrecip > 5:
		return &Alert{
			Title:          "AVISO: ALTA PROBABILIDAD DE LLUVIA",
			Recommendation: fmt.Sprintf("El promedio de lluvia para este día es de %.1f mm. Es probable que necesites un plan B con techo.", *stats.AvgPrecip),
			Type:           AlertSecondary,
		}
	}
	return nil
}
