package weather

import "testing"

func TestFillSyntheticDays(t *testing.T) {
	last := DailyEntry{
		Date: "2025-03-10",
		MaxC: 10, MaxF: 50,
		MinC: 2, MinF: 36,
	}

	got := FillSyntheticDays(last, 4)
	if len(got) != 4 {
		t.Fatalf("expected 4 synthetic days, got %d", len(got))
	}

	// Variance is floor(sin(day-of-month)*5): days 11..14 give -5, -3, 2, 4.
	want := []DailyEntry{
		{Date: "2025-03-11", DayName: "Tue", MaxC: 5, MaxF: 41, MinC: -3, MinF: 27,
			ConditionText: "Sunny", ConditionIcon: iconSunny, ChanceOfRain: 50, IsMock: true},
		{Date: "2025-03-12", DayName: "Wed", MaxC: 7, MaxF: 45, MinC: -1, MinF: 31,
			ConditionText: "Partly Cloudy", ConditionIcon: iconPartlyCloudy, ChanceOfRain: 30, IsMock: true},
		{Date: "2025-03-13", DayName: "Thu", MaxC: 12, MaxF: 54, MinC: 4, MinF: 40,
			ConditionText: "Sunny", ConditionIcon: iconSunny, ChanceOfRain: 20, IsMock: true},
		{Date: "2025-03-14", DayName: "Fri", MaxC: 14, MaxF: 57, MinC: 6, MinF: 43,
			ConditionText: "Partly Cloudy", ConditionIcon: iconPartlyCloudy, ChanceOfRain: 40, IsMock: true},
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("day %d:\n got  %+v\n want %+v", i, got[i], want[i])
		}
	}
}

func TestFillSyntheticDaysDatesIncrease(t *testing.T) {
	last := DailyEntry{Date: "2025-12-29", MaxC: 1, MaxF: 34, MinC: -4, MinF: 25}

	got := FillSyntheticDays(last, 6)

	wantDates := []string{
		"2025-12-30", "2025-12-31", "2026-01-01",
		"2026-01-02", "2026-01-03", "2026-01-04",
	}
	for i, d := range got {
		if d.Date != wantDates[i] {
			t.Errorf("day %d date = %s, want %s", i, d.Date, wantDates[i])
		}
		if !d.IsMock {
			t.Errorf("day %d not flagged as mock", i)
		}
	}
}

func TestFillSyntheticDaysConditionParity(t *testing.T) {
	last := DailyEntry{Date: "2025-06-01", MaxC: 20, MaxF: 68, MinC: 12, MinF: 54}

	got := FillSyntheticDays(last, 5)
	for i, d := range got {
		offset := i + 1
		want := "Sunny"
		if offset%2 == 0 {
			want = "Partly Cloudy"
		}
		if d.ConditionText != want {
			t.Errorf("offset %d condition = %s, want %s", offset, d.ConditionText, want)
		}
	}
}
