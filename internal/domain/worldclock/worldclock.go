// Package worldclock answers current-time and weather lookups for a fixed
// set of known cities.
package worldclock

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rohitk523/adk-project/internal/types"
)

type cityInfo struct {
	tz      string
	weather string
}

var cities = map[string]cityInfo{
	"new york": {
		tz:      "America/New_York",
		weather: "The weather in New York is sunny with a temperature of 25 degrees Celsius (77 degrees Fahrenheit).",
	},
	"london": {
		tz:      "Europe/London",
		weather: "The weather in London is cloudy with a temperature of 16 degrees Celsius (61 degrees Fahrenheit).",
	},
	"tokyo": {
		tz:      "Asia/Tokyo",
		weather: "The weather in Tokyo is clear with a temperature of 22 degrees Celsius (72 degrees Fahrenheit).",
	},
	"mumbai": {
		tz:      "Asia/Kolkata",
		weather: "The weather in Mumbai is humid with a temperature of 30 degrees Celsius (86 degrees Fahrenheit).",
	},
}

// Now is swappable for tests.
var Now = time.Now

// CurrentTime reports the current local time in the given city.
func CurrentTime(city string) (string, error) {
	info, ok := lookup(city)
	if !ok {
		return "", unknownCity(city)
	}
	loc, err := time.LoadLocation(info.tz)
	if err != nil {
		return "", fmt.Errorf("load timezone %s: %w", info.tz, err)
	}
	return fmt.Sprintf("The current time in %s is %s",
		title(city), Now().In(loc).Format("2006-01-02 15:04:05 MST")), nil
}

// Weather reports the weather for the given city.
func Weather(city string) (string, error) {
	info, ok := lookup(city)
	if !ok {
		return "", unknownCity(city)
	}
	return info.weather, nil
}

// Cities returns the known city names in stable order.
func Cities() []string {
	out := make([]string, 0, len(cities))
	for c := range cities {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func lookup(city string) (cityInfo, bool) {
	info, ok := cities[strings.ToLower(strings.TrimSpace(city))]
	return info, ok
}

func unknownCity(city string) error {
	return fmt.Errorf("%w: no information for city %q (known: %s)",
		types.ErrValidation, city, strings.Join(Cities(), ", "))
}

func title(city string) string {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(city)))
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
