package domain

type TypeName string

func (t TypeName) String() string {
	return string(t)
}

const (
	TypeNormal   TypeName = "normal"
	TypeFire     TypeName = "fire"
	TypeWater    TypeName = "water"
	TypeElectric TypeName = "electric"
	TypeGrass    TypeName = "grass"
	TypeIce      TypeName = "ice"
	TypeFighting TypeName = "fighting"
	TypePoison   TypeName = "poison"
	TypeGround   TypeName = "ground"
	TypeFlying   TypeName = "flying"
	TypePsychic  TypeName = "psychic"
	TypeBug      TypeName = "bug"
	TypeRock     TypeName = "rock"
	TypeGhost    TypeName = "ghost"
	TypeDragon   TypeName = "dragon"
	TypeDark     TypeName = "dark"
	TypeSteel    TypeName = "steel"
	TypeFairy    TypeName = "fairy"
)

// Types lists every known category in display order.
var Types = []TypeName{
	TypeNormal,
	TypeFire,
	TypeWater,
	TypeElectric,
	TypeGrass,
	TypeIce,
	TypeFighting,
	TypePoison,
	TypeGround,
	TypeFlying,
	TypePsychic,
	TypeBug,
	TypeRock,
	TypeGhost,
	TypeDragon,
	TypeDark,
	TypeSteel,
	TypeFairy,
}

const unknownTypeColor = "#68A090"

// Color returns the badge colour for the type as a hex string.
func (t TypeName) Color() string {
	switch t {
	case TypeNormal:
		return "#A8A878"
	case TypeFire:
		return "#F08030"
	case TypeWater:
		return "#6890F0"
	case TypeElectric:
		return "#F8D030"
	case TypeGrass:
		return "#78C850"
	case TypeIce:
		return "#98D8D8"
	case TypeFighting:
		return "#C03028"
	case TypePoison:
		return "#A040A0"
	case TypeGround:
		return "#E0C068"
	case TypeFlying:
		return "#A890F0"
	case TypePsychic:
		return "#F85888"
	case TypeBug:
		return "#A8B820"
	case TypeRock:
		return "#B8A038"
	case TypeGhost:
		return "#705898"
	case TypeDragon:
		return "#7038F8"
	case TypeDark:
		return "#705848"
	case TypeSteel:
		return "#B8B8D0"
	case TypeFairy:
		return "#EE99AC"
	default:
		return unknownTypeColor
	}
}

func (t TypeName) IsKnown() bool {
	for _, known := range Types {
		if known == t {
			return true
		}
	}
	return false
}
