package weather

import (
	"fmt"
	"strconv"
	"time"
)

// mockCondition pairs a condition label with its description and icon.
type mockCondition struct {
	text string
	desc string
	icon string
}

var mockConditions = []mockCondition{
	{"Sunny", "Clear sky", "//cdn.weatherapi.com/weather/64x64/day/113.png"},
	{"Cloudy", "Overcast clouds", "//cdn.weatherapi.com/weather/64x64/day/122.png"},
	{"Rainy", "Light rain", "//cdn.weatherapi.com/weather/64x64/day/296.png"},
	{"Partly Cloudy", "Partly cloudy", "//cdn.weatherapi.com/weather/64x64/day/116.png"},
	{"Clear", "Clear night sky", "//cdn.weatherapi.com/weather/64x64/night/113.png"},
	{"Stormy", "Thunderstorm", "//cdn.weatherapi.com/weather/64x64/day/200.png"},
}

var moonPhases = []string{
	"New Moon", "Waxing Crescent", "First Quarter", "Waxing Gibbous",
	"Full Moon", "Waning Gibbous", "Last Quarter", "Waning Crescent",
}

func celsiusToF(c int) int {
	return round(float64(c)*9/5 + 32)
}

// GenerateForecast synthesizes a complete forecast view-model for a city
// without touching the network. The generator is seeded from the city name
// plus the calendar day-of-month, so output is stable for a city within a
// day and rolls over at midnight. Draw order is part of the contract; the
// mock stays bit-identical across invocations only as long as every field
// keeps pulling from the stream in the same sequence.
func GenerateForecast(city City, now time.Time) *ViewModel {
	r := newRNG(city.Name + strconv.Itoa(now.Day()))

	// Linear latitude model: +30C at the equator, -10C at the poles.
	lat := city.Lat
	if lat < 0 {
		lat = -lat
	}
	baseTemp := round(30-(lat/90)*40) + r.intn(-5, 5)

	cond := mockConditions[r.intn(0, len(mockConditions)-1)]

	high := baseTemp + r.intn(2, 5)
	low := baseTemp - r.intn(3, 8)
	feelsLike := baseTemp + r.intn(-2, 3)
	humidity := r.intn(30, 90)
	windSpeed := r.intn(2, 25)

	current := CurrentConditions{
		TempC:         baseTemp,
		TempF:         celsiusToF(baseTemp),
		ConditionText: cond.text,
		ConditionIcon: cond.icon,
		FeelsLikeC:    feelsLike,
		FeelsLikeF:    celsiusToF(feelsLike),
		Humidity:      humidity,
		WindKph:       windSpeed,
		UV:            0,
	}

	hourly := make([]HourlyEntry, 0, hourlyLimit)
	currentHour := now.Hour()
	for i := 0; i < hourlyLimit; i++ {
		hourTemp := baseTemp + r.intn(-3, 3)
		hCond := mockConditions[r.intn(0, len(mockConditions)-1)]

		label := "Now"
		if i > 0 {
			label = fmt.Sprintf("%d:00", (currentHour+i)%24)
		}

		hourly = append(hourly, HourlyEntry{
			Time:          label,
			TempC:         hourTemp,
			TempF:         celsiusToF(hourTemp),
			ConditionText: hCond.text,
			ConditionIcon: hCond.icon,
			IsNow:         i == 0,
		})
	}

	daily := make([]DailyEntry, 0, forecastDays)
	for i := 0; i < forecastDays; i++ {
		dHigh := high + r.intn(-5, 5)
		dLow := low + r.intn(-5, 5)
		dCond := mockConditions[r.intn(0, len(mockConditions)-1)]
		rain := r.intn(0, 80)

		date := now.AddDate(0, 0, i)
		dayName := "Today"
		if i > 0 {
			dayName = date.Format("Mon")
		}

		daily = append(daily, DailyEntry{
			Date:          date.Format("2006-01-02"),
			DayName:       dayName,
			MaxC:          dHigh,
			MaxF:          celsiusToF(dHigh),
			MinC:          dLow,
			MinF:          celsiusToF(dLow),
			ConditionText: dCond.text,
			ConditionIcon: dCond.icon,
			ChanceOfRain:  rain,
			IsMock:        true,
		})
	}

	sunrise := fmt.Sprintf("0%d:%02d AM", r.intn(5, 7), r.intn(10, 59))
	sunset := fmt.Sprintf("%d:%02d PM", r.intn(16, 22), r.intn(10, 59))
	uv := r.intn(0, 10)
	detailHumidity := r.intn(20, 90)
	detailWind := r.intn(2, 30)
	pressure := r.intn(980, 1030)
	visibility := r.intn(5, 20)

	precip := r.intn(0, 5)
	cloud := r.intn(0, 100)
	gust := detailWind + r.intn(5, 15)
	moonPhase := moonPhases[r.intn(0, len(moonPhases)-1)]
	moonIllumination := r.intn(0, 100)
	epaIndex := r.intn(1, 3)
	dewpoint := baseTemp - r.intn(1, 5)

	current.UV = float64(uv)

	return &ViewModel{
		Location: Location{
			Name:      city.Name,
			Country:   city.Country,
			Lat:       city.Lat,
			Lon:       city.Lon,
			Localtime: now.Format("2006-01-02 15:04"),
		},
		Current: current,
		Hourly:  hourly,
		Daily:   daily,
		Details: DetailGroup{
			Sunrise:         sunrise,
			Sunset:          sunset,
			PressureMb:      float64(pressure),
			VisibilityKm:    float64(visibility),
			UV:              float64(uv),
			Humidity:        detailHumidity,
			WindKph:         float64(detailWind),
			FeelsLikeC:      float64(feelsLike),
			FeelsLikeF:      float64(celsiusToF(feelsLike)),
			AirQualityIndex: epaIndex,
		},
		ExtraDetails: ExtraDetailGroup{
			PrecipMm:         float64(precip),
			Cloud:            cloud,
			GustKph:          float64(gust),
			MoonPhase:        moonPhase,
			MoonIllumination: moonIllumination,
			UsEpaIndex:       epaIndex,
			DewpointC:        float64(dewpoint),
			DewpointF:        float64(celsiusToF(dewpoint)),
		},
	}
}
