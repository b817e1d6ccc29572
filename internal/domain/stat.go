package domain

// MaxStatValue is the upper bound of a base stat.
const MaxStatValue = 255

type Stat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Label returns the short display label for the stat.
func (s Stat) Label() string {
	switch s.Name {
	case "hp":
		return "HP"
	case "attack":
		return "Attack"
	case "defense":
		return "Defense"
	case "special-attack":
		return "Sp. Attack"
	case "special-defense":
		return "Sp. Defense"
	case "speed":
		return "Speed"
	default:
		return s.Name
	}
}

// BarWidth returns the stat bar width in percent, clamped to [0, 100].
func (s Stat) BarWidth() float64 {
	return StatBarWidth(s.Value)
}

func StatBarWidth(value int) float64 {
	width := float64(value) / MaxStatValue * 100
	if width < 0 {
		return 0
	}
	if width > 100 {
		return 100
	}
	return width
}
