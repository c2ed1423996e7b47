package geo

import "strings"

// knownPlaces maps lowercase place names to coordinates. This is a deliberate
// stand-in for a real geocoder: resolution may fail for any input and callers
// must degrade gracefully instead of erroring.
var knownPlaces = map[string]Coordinate{
	"almaty":       {Lat: 43.2389, Lng: 76.8897},
	"astana":       {Lat: 51.1282, Lng: 71.4304},
	"shymkent":     {Lat: 42.3155, Lng: 69.5868},
	"karaganda":    {Lat: 49.8028, Lng: 73.0877},
	"aktobe":       {Lat: 50.2839, Lng: 57.1670},
	"taraz":        {Lat: 42.8992, Lng: 71.3927},
	"pavlodar":     {Lat: 52.2871, Lng: 76.9674},
	"oskemen":      {Lat: 49.9483, Lng: 82.6275},
	"semey":        {Lat: 50.4111, Lng: 80.2275},
	"atyrau":       {Lat: 47.1164, Lng: 51.8830},
	"kostanay":     {Lat: 53.2198, Lng: 63.6354},
	"kyzylorda":    {Lat: 44.8488, Lng: 65.4823},
	"oral":         {Lat: 51.2225, Lng: 51.3725},
	"petropavl":    {Lat: 54.8753, Lng: 69.1628},
	"aktau":        {Lat: 43.6511, Lng: 51.1575},
	"taldykorgan":  {Lat: 45.0156, Lng: 78.3739},
	"turkistan":    {Lat: 43.2973, Lng: 68.2517},
	"kokshetau":    {Lat: 53.2948, Lng: 69.4048},
	"ekibastuz":    {Lat: 51.7244, Lng: 75.3232},
	"zhezkazgan":   {Lat: 47.7833, Lng: 67.7667},
}

// Resolve maps a free-text location to a coordinate by case-insensitive
// substring match against the known-places table. ok is false on a miss;
// a miss is expected, not an error.
func Resolve(freeText string) (Coordinate, bool) {
	s := strings.ToLower(strings.TrimSpace(freeText))
	if s == "" {
		return Coordinate{}, false
	}
	for name, coord := range knownPlaces {
		if strings.Contains(s, name) {
			return coord, true
		}
	}
	return Coordinate{}, false
}
