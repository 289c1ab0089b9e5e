package report

import (
	"fmt"
	"math"
	"time"

	"buffet_festas/internal/domain/entities"
)

var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthName returns the Portuguese name of m.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

// PeakMonth is the month with most events compared with the monthly mean of
// the year.
type PeakMonth struct {
	Month               time.Month
	Name                string
	Events              int
	Average             float64
	PercentAboveAverage int
	AboveAverage        bool
}

// PeakDemandMonth finds the busiest month of a 12-month window.
//
// Months with no events count as zero in the mean. Ties go to the earliest
// month. A year without events returns ErrNoData.
func PeakDemandMonth(counts [12]int) (PeakMonth, error) {
	total := 0
	peak := 0
	for i, c := range counts {
		if c < 0 {
			return PeakMonth{}, fmt.Errorf("%w: negative count for month %d", entities.ErrInvalidArgument, i+1)
		}
		total += c
		if c > counts[peak] {
			peak = i
		}
	}
	if total == 0 {
		return PeakMonth{}, fmt.Errorf("%w: no events in the period", entities.ErrNoData)
	}

	mean := float64(total) / 12
	p := PeakMonth{
		Month:   time.Month(peak + 1),
		Name:    monthNames[peak],
		Events:  counts[peak],
		Average: mean,
	}
	if mean > 0 {
		p.PercentAboveAverage = roundHalfUp((float64(p.Events) - mean) / mean * 100)
		p.AboveAverage = float64(p.Events) > mean
	}
	return p, nil
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// MonthlyCounts buckets dates of the given year by month. Dates from other
// years are ignored.
func MonthlyCounts(dates []time.Time, year int) [12]int {
	var out [12]int
	for _, d := range dates {
		if d.Year() != year {
			continue
		}
		out[d.Month()-1]++
	}
	return out
}
