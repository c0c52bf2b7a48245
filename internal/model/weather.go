package model

// Weather is the battle-wide weather kind.
type Weather int

const (
	WeatherNone Weather = iota
	WeatherRain
	WeatherSun
)

func (w Weather) String() string {
	switch w {
	case WeatherRain:
		return "Rain"
	case WeatherSun:
		return "Sun"
	default:
		return "None"
	}
}

// WeatherState is the single active weather and its remaining turns.
type WeatherState struct {
	Kind      Weather
	TurnsLeft int
}

// Set overwrites the current weather and resets the counter.
func (w *WeatherState) Set(kind Weather, turns int) {
	if kind == WeatherNone || turns <= 0 {
		*w = WeatherState{}
		return
	}
	w.Kind = kind
	w.TurnsLeft = turns
}

// Tick decrements the counter. Returns true if the weather just expired.
func (w *WeatherState) Tick() bool {
	if w.Kind == WeatherNone {
		return false
	}
	w.TurnsLeft--
	if w.TurnsLeft <= 0 {
		*w = WeatherState{}
		return true
	}
	return false
}

// Is reports whether kind is the active weather.
func (w WeatherState) Is(kind Weather) bool {
	return w.Kind == kind && kind != WeatherNone
}
