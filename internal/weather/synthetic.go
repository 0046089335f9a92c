package weather

import (
	"math"
	"time"
)

const (
	iconSunny        = "//cdn.weatherapi.com/weather/64x64/day/113.png"
	iconPartlyCloudy = "//cdn.weatherapi.com/weather/64x64/day/116.png"
)

// FillSyntheticDays pads a short forecast horizon: given the last real day
// it produces `needed` follow-on entries continuing the date sequence.
// The variance is keyed on the target calendar day-of-month only, so the
// padding is reproducible and has no meteorological meaning. Every entry
// is flagged IsMock.
func FillSyntheticDays(lastReal DailyEntry, needed int) []DailyEntry {
	base, err := time.Parse("2006-01-02", lastReal.Date)
	if err != nil {
		base = time.Now().UTC()
	}

	out := make([]DailyEntry, 0, needed)
	for i := 1; i <= needed; i++ {
		d := base.AddDate(0, 0, i)

		variance := int(math.Floor(math.Sin(float64(d.Day())) * 5))
		varianceF := float64(variance) * 1.8

		text, icon := "Sunny", iconSunny
		if i%2 == 0 {
			text, icon = "Partly Cloudy", iconPartlyCloudy
		}

		chance := variance * 10
		if chance < 0 {
			chance = -chance
		}

		out = append(out, DailyEntry{
			Date:          d.Format("2006-01-02"),
			DayName:       d.Format("Mon"),
			MaxC:          lastReal.MaxC + variance,
			MaxF:          round(float64(lastReal.MaxF) + varianceF),
			MinC:          lastReal.MinC + variance,
			MinF:          round(float64(lastReal.MinF) + varianceF),
			ConditionText: text,
			ConditionIcon: icon,
			ChanceOfRain:  chance,
			IsMock:        true,
		})
	}
	return out
}
