package weather

import "strings"

// Cities is the seeded catalog behind the sidebar and the offline/demo
// forecast path.
var Cities = []City{
	// Finland
	{Name: "Helsinki", Country: "Finland", Lat: 60.1699, Lon: 24.9384},
	{Name: "Tampere", Country: "Finland", Lat: 61.4978, Lon: 23.7610},
	{Name: "Turku", Country: "Finland", Lat: 60.4518, Lon: 22.2666},
	{Name: "Oulu", Country: "Finland", Lat: 65.0121, Lon: 25.4651},
	{Name: "Espoo", Country: "Finland", Lat: 60.2055, Lon: 24.6559},
	{Name: "Vantaa", Country: "Finland", Lat: 60.2818, Lon: 25.0782},
	{Name: "Jyväskylä", Country: "Finland", Lat: 62.2426, Lon: 25.7473},
	{Name: "Lahti", Country: "Finland", Lat: 60.9827, Lon: 25.6615},
	{Name: "Kuopio", Country: "Finland", Lat: 62.8924, Lon: 27.6770},
	{Name: "Pori", Country: "Finland", Lat: 61.4851, Lon: 21.7974},
	{Name: "Rovaniemi", Country: "Finland", Lat: 66.5039, Lon: 25.7294},
	{Name: "Joensuu", Country: "Finland", Lat: 62.6010, Lon: 29.7636},
	{Name: "Vaasa", Country: "Finland", Lat: 63.0960, Lon: 21.6158},

	// Nordics
	{Name: "Stockholm", Country: "Sweden", Lat: 59.3293, Lon: 18.0686},
	{Name: "Gothenburg", Country: "Sweden", Lat: 57.7089, Lon: 11.9746},
	{Name: "Malmö", Country: "Sweden", Lat: 55.6050, Lon: 13.0038},
	{Name: "Oslo", Country: "Norway", Lat: 59.9139, Lon: 10.7522},
	{Name: "Bergen", Country: "Norway", Lat: 60.3913, Lon: 5.3221},
	{Name: "Copenhagen", Country: "Denmark", Lat: 55.6761, Lon: 12.5683},
	{Name: "Aarhus", Country: "Denmark", Lat: 56.1629, Lon: 10.2039},
	{Name: "Reykjavik", Country: "Iceland", Lat: 64.1466, Lon: -21.9426},

	// Europe
	{Name: "London", Country: "UK", Lat: 51.5074, Lon: -0.1278},
	{Name: "Paris", Country: "France", Lat: 48.8566, Lon: 2.3522},
	{Name: "Berlin", Country: "Germany", Lat: 52.5200, Lon: 13.4050},
	{Name: "Munich", Country: "Germany", Lat: 48.1351, Lon: 11.5820},
	{Name: "Rome", Country: "Italy", Lat: 41.9028, Lon: 12.4964},
	{Name: "Milan", Country: "Italy", Lat: 45.4642, Lon: 9.1900},
	{Name: "Madrid", Country: "Spain", Lat: 40.4168, Lon: -3.7038},
	{Name: "Barcelona", Country: "Spain", Lat: 41.3851, Lon: 2.1734},
	{Name: "Lisbon", Country: "Portugal", Lat: 38.7223, Lon: -9.1393},
	{Name: "Amsterdam", Country: "Netherlands", Lat: 52.3676, Lon: 4.9041},
	{Name: "Brussels", Country: "Belgium", Lat: 50.8503, Lon: 4.3517},
	{Name: "Vienna", Country: "Austria", Lat: 48.2082, Lon: 16.3738},
	{Name: "Zurich", Country: "Switzerland", Lat: 47.3769, Lon: 8.5417},
	{Name: "Prague", Country: "Czech Republic", Lat: 50.0755, Lon: 14.4378},
	{Name: "Warsaw", Country: "Poland", Lat: 52.2297, Lon: 21.0122},
	{Name: "Budapest", Country: "Hungary", Lat: 47.4979, Lon: 19.0402},

	// World
	{Name: "New York", Country: "USA", Lat: 40.7128, Lon: -74.0060},
	{Name: "Los Angeles", Country: "USA", Lat: 34.0522, Lon: -118.2437},
	{Name: "Chicago", Country: "USA", Lat: 41.8781, Lon: -87.6298},
	{Name: "Miami", Country: "USA", Lat: 25.7617, Lon: -80.1918},
	{Name: "Toronto", Country: "Canada", Lat: 43.6510, Lon: -79.3470},
	{Name: "Vancouver", Country: "Canada", Lat: 49.2827, Lon: -123.1207},
	{Name: "Tokyo", Country: "Japan", Lat: 35.6762, Lon: 139.6503},
	{Name: "Kyoto", Country: "Japan", Lat: 34.9858, Lon: 135.7588},
	{Name: "Seoul", Country: "South Korea", Lat: 37.5665, Lon: 126.9780},
	{Name: "Singapore", Country: "Singapore", Lat: 1.3521, Lon: 103.8198},
	{Name: "Sydney", Country: "Australia", Lat: -33.8688, Lon: 151.2093},
	{Name: "Melbourne", Country: "Australia", Lat: -37.8136, Lon: 144.9631},
	{Name: "Dubai", Country: "UAE", Lat: 25.2048, Lon: 55.2708},
	{Name: "Mumbai", Country: "India", Lat: 19.0760, Lon: 72.8777},
	{Name: "Bangkok", Country: "Thailand", Lat: 13.7563, Lon: 100.5018},
}

// FindCity looks a catalog city up by name, case-insensitively.
func FindCity(name string) (City, bool) {
	for _, c := range Cities {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return City{}, false
}
