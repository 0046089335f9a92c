package weather

// Location identifies the resolved place a forecast belongs to.
// Persisted favorites and recents are keyed by Name only; two distinct
// places sharing a name collide. Known limitation, kept on purpose.
type Location struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Localtime string  `json:"localtime"`
	TzID      string  `json:"tz_id"`
}

// CurrentConditions holds the display-ready current weather. Temperatures
// are carried in both units; the display layer picks one.
type CurrentConditions struct {
	TempC         int     `json:"temp_c"`
	TempF         int     `json:"temp_f"`
	ConditionText string  `json:"conditionText"`
	ConditionIcon string  `json:"conditionIcon"`
	FeelsLikeC    int     `json:"feelslike_c"`
	FeelsLikeF    int     `json:"feelslike_f"`
	Humidity      int     `json:"humidity"`
	WindKph       int     `json:"wind_kph"`
	UV            float64 `json:"uv"`
}

// HourlyEntry is one slot of the hourly strip. Index 0 is always the
// current hour, labeled "Now".
type HourlyEntry struct {
	Time          string `json:"time"`
	TempC         int    `json:"temp_c"`
	TempF         int    `json:"temp_f"`
	ConditionText string `json:"conditionText"`
	ConditionIcon string `json:"conditionIcon"`
	ChanceOfRain  int    `json:"chance_of_rain"`
	IsNow         bool   `json:"isNow"`
}

// DailyEntry is one slot of the 7-day strip. IsMock marks entries that
// were synthesized to pad a short provider horizon.
type DailyEntry struct {
	Date          string `json:"date"`
	DayName       string `json:"dayName"`
	MaxC          int    `json:"max_c"`
	MaxF          int    `json:"max_f"`
	MinC          int    `json:"min_c"`
	MinF          int    `json:"min_f"`
	ConditionText string `json:"conditionText"`
	ConditionIcon string `json:"conditionIcon"`
	ChanceOfRain  int    `json:"chance_of_rain"`
	IsMock        bool   `json:"isMock"`
}

// DetailGroup carries the primary auxiliary measurements shown in the
// details grid.
type DetailGroup struct {
	Sunrise         string  `json:"sunrise"`
	Sunset          string  `json:"sunset"`
	PressureMb      float64 `json:"pressure_mb"`
	VisibilityKm    float64 `json:"visibility_km"`
	UV              float64 `json:"uv"`
	Humidity        int     `json:"humidity"`
	WindKph         float64 `json:"wind_kph"`
	FeelsLikeC      float64 `json:"feelsLike_c"`
	FeelsLikeF      float64 `json:"feelsLike_f"`
	AirQualityIndex int     `json:"airQualityIndex"`
}

// ExtraDetailGroup carries the extended measurements.
type ExtraDetailGroup struct {
	PrecipMm         float64 `json:"precip_mm"`
	Cloud            int     `json:"cloud"`
	GustKph          float64 `json:"gust_kph"`
	MoonPhase        string  `json:"moon_phase"`
	MoonIllumination int     `json:"moon_illumination"`
	UsEpaIndex       int     `json:"us_epa_index"`
	DewpointC        float64 `json:"dewpoint_c"`
	DewpointF        float64 `json:"dewpoint_f"`
}

// ViewModel is the flattened forecast returned to the presentation layer.
type ViewModel struct {
	Location     Location          `json:"location"`
	Current      CurrentConditions `json:"current"`
	Hourly       []HourlyEntry     `json:"hourly"`
	Daily        []DailyEntry      `json:"daily"`
	Details      DetailGroup       `json:"details"`
	ExtraDetails ExtraDetailGroup  `json:"extraDetails"`
}

// SearchResultItem is a denormalized location candidate for autocomplete.
type SearchResultItem struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// City is the persisted location record used by recents, favorites and
// the seeded catalog.
type City struct {
	Name    string  `json:"name" validate:"required"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}
