package weather

import (
	"math"
	"strconv"
	"time"
)

const (
	forecastDays = 7
	// The provider is asked for a window of hours; the view keeps a strip.
	hourlyWindow = 24
	hourlyLimit  = 12

	dewpointMatchWindow = 3600 // seconds around local now
)

// round matches the rounding the UI contract was built on: halves always
// round up, also for negative values.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Normalize flattens the provider's nested forecast payload into the
// display-ready view-model. It is pure: "now" is the payload's own
// localtime_epoch, never the wall clock.
func Normalize(resp *APIForecastResponse) *ViewModel {
	loc := resp.Location

	tz, err := time.LoadLocation(loc.TzID)
	if err != nil {
		tz = time.UTC
	}

	vm := &ViewModel{
		Location: Location{
			Name:      loc.Name,
			Region:    loc.Region,
			Country:   loc.Country,
			Lat:       loc.Lat,
			Lon:       loc.Lon,
			Localtime: loc.Localtime,
			TzID:      loc.TzID,
		},
		Current: CurrentConditions{
			TempC:         round(resp.Current.TempC),
			TempF:         round(resp.Current.TempF),
			ConditionText: resp.Current.Condition.Text,
			ConditionIcon: resp.Current.Condition.Icon,
			FeelsLikeC:    round(resp.Current.FeelsLikeC),
			FeelsLikeF:    round(resp.Current.FeelsLikeF),
			Humidity:      resp.Current.Humidity,
			WindKph:       round(resp.Current.WindKph),
			UV:            resp.Current.UV,
		},
		Hourly: normalizeHourly(resp, tz),
		Daily:  normalizeDaily(resp.Forecast.ForecastDay),
	}

	if len(resp.Forecast.ForecastDay) > 0 {
		today := resp.Forecast.ForecastDay[0]
		currentHour := pickCurrentHour(today.Hour, loc.LocaltimeEpoch)

		illumination, _ := strconv.Atoi(today.Astro.MoonIllumination)

		vm.Details = DetailGroup{
			Sunrise:         today.Astro.Sunrise,
			Sunset:          today.Astro.Sunset,
			PressureMb:      resp.Current.PressureMb,
			VisibilityKm:    resp.Current.VisKm,
			UV:              resp.Current.UV,
			Humidity:        resp.Current.Humidity,
			WindKph:         resp.Current.WindKph,
			FeelsLikeC:      resp.Current.FeelsLikeC,
			FeelsLikeF:      resp.Current.FeelsLikeF,
			AirQualityIndex: resp.Current.AirQuality.UsEpaIndex,
		}
		vm.ExtraDetails = ExtraDetailGroup{
			PrecipMm:         resp.Current.PrecipMm,
			Cloud:            resp.Current.Cloud,
			GustKph:          resp.Current.GustKph,
			MoonPhase:        today.Astro.MoonPhase,
			MoonIllumination: illumination,
			UsEpaIndex:       resp.Current.AirQuality.UsEpaIndex,
			DewpointC:        currentHour.DewpointC,
			DewpointF:        currentHour.DewpointF,
		}
	}

	return vm
}

// normalizeHourly flattens all days' hour buckets, drops everything before
// local now and keeps a bounded strip. The first surviving entry becomes
// "Now"; later entries get a 12-hour clock label in the location's zone.
func normalizeHourly(resp *APIForecastResponse, tz *time.Location) []HourlyEntry {
	currentEpoch := resp.Location.LocaltimeEpoch

	var upcoming []APIHour
	for _, day := range resp.Forecast.ForecastDay {
		for _, h := range day.Hour {
			if h.TimeEpoch < currentEpoch {
				continue
			}
			upcoming = append(upcoming, h)
			if len(upcoming) >= hourlyWindow {
				break
			}
		}
		if len(upcoming) >= hourlyWindow {
			break
		}
	}

	if len(upcoming) > hourlyLimit {
		upcoming = upcoming[:hourlyLimit]
	}

	hourly := make([]HourlyEntry, 0, len(upcoming))
	for i, h := range upcoming {
		label := "Now"
		if i > 0 {
			label = time.Unix(h.TimeEpoch, 0).In(tz).Format("3:04 PM")
		}
		hourly = append(hourly, HourlyEntry{
			Time:          label,
			TempC:         round(h.TempC),
			TempF:         round(h.TempF),
			ConditionText: h.Condition.Text,
			ConditionIcon: h.Condition.Icon,
			ChanceOfRain:  h.ChanceOfRain,
			IsNow:         i == 0,
		})
	}
	return hourly
}

// normalizeDaily maps provider days onto the fixed 7-entry strip,
// synthesizing trailing days when the provider's plan returns fewer.
func normalizeDaily(days []APIForecastDay) []DailyEntry {
	daily := make([]DailyEntry, 0, forecastDays)
	for _, d := range days {
		dayName := ""
		if date, err := time.Parse("2006-01-02", d.Date); err == nil {
			dayName = date.Format("Mon")
		}
		daily = append(daily, DailyEntry{
			Date:          d.Date,
			DayName:       dayName,
			MaxC:          round(d.Day.MaxTempC),
			MaxF:          round(d.Day.MaxTempF),
			MinC:          round(d.Day.MinTempC),
			MinF:          round(d.Day.MinTempF),
			ConditionText: d.Day.Condition.Text,
			ConditionIcon: d.Day.Condition.Icon,
			ChanceOfRain:  d.Day.DailyChanceOfRain,
			IsMock:        false,
		})
	}

	if len(daily) == 0 {
		return daily
	}

	if len(daily) < forecastDays {
		daily = append(daily, FillSyntheticDays(daily[len(daily)-1], forecastDays-len(daily))...)
	} else {
		daily = daily[:forecastDays]
	}

	daily[0].DayName = "Today"
	return daily
}

// pickCurrentHour finds the hour bucket closest to local now, falling back
// to the day's first bucket when none is within the match window.
func pickCurrentHour(hours []APIHour, currentEpoch int64) APIHour {
	for _, h := range hours {
		delta := h.TimeEpoch - currentEpoch
		if delta < 0 {
			delta = -delta
		}
		if delta < dewpointMatchWindow {
			return h
		}
	}
	if len(hours) > 0 {
		return hours[0]
	}
	return APIHour{}
}
