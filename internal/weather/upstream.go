package weather

// Wire types for the upstream forecast provider (WeatherAPI.com). Only the
// fields the normalization consumes are mapped; everything else is dropped
// at decode time.

type APICondition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

type APILocation struct {
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TzID           string  `json:"tz_id"`
	LocaltimeEpoch int64   `json:"localtime_epoch"`
	Localtime      string  `json:"localtime"`
}

type APIAirQuality struct {
	UsEpaIndex int `json:"us-epa-index"`
}

type APICurrent struct {
	TempC      float64       `json:"temp_c"`
	TempF      float64       `json:"temp_f"`
	Condition  APICondition  `json:"condition"`
	FeelsLikeC float64       `json:"feelslike_c"`
	FeelsLikeF float64       `json:"feelslike_f"`
	Humidity   int           `json:"humidity"`
	WindKph    float64       `json:"wind_kph"`
	GustKph    float64       `json:"gust_kph"`
	PressureMb float64       `json:"pressure_mb"`
	PrecipMm   float64       `json:"precip_mm"`
	Cloud      int           `json:"cloud"`
	VisKm      float64       `json:"vis_km"`
	UV         float64       `json:"uv"`
	AirQuality APIAirQuality `json:"air_quality"`
}

type APIHour struct {
	TimeEpoch    int64        `json:"time_epoch"`
	TempC        float64      `json:"temp_c"`
	TempF        float64      `json:"temp_f"`
	Condition    APICondition `json:"condition"`
	ChanceOfRain int          `json:"chance_of_rain"`
	DewpointC    float64      `json:"dewpoint_c"`
	DewpointF    float64      `json:"dewpoint_f"`
}

type APIDay struct {
	MaxTempC          float64      `json:"maxtemp_c"`
	MaxTempF          float64      `json:"maxtemp_f"`
	MinTempC          float64      `json:"mintemp_c"`
	MinTempF          float64      `json:"mintemp_f"`
	Condition         APICondition `json:"condition"`
	DailyChanceOfRain int          `json:"daily_chance_of_rain"`
}

type APIAstro struct {
	Sunrise          string `json:"sunrise"`
	Sunset           string `json:"sunset"`
	MoonPhase        string `json:"moon_phase"`
	MoonIllumination string `json:"moon_illumination"`
}

type APIForecastDay struct {
	Date  string    `json:"date"`
	Day   APIDay    `json:"day"`
	Astro APIAstro  `json:"astro"`
	Hour  []APIHour `json:"hour"`
}

type APIForecast struct {
	ForecastDay []APIForecastDay `json:"forecastday"`
}

// APIForecastResponse is the provider's nested forecast payload.
type APIForecastResponse struct {
	Location APILocation `json:"location"`
	Current  APICurrent  `json:"current"`
	Forecast APIForecast `json:"forecast"`
}
