package model

type Position string

const (
	POS_PORTERO        Position = "Portero"
	POS_DEFENSA        Position = "Defensa"
	POS_CENTROCAMPISTA Position = "Centrocampista"
	POS_DELANTERO      Position = "Delantero"
	POS_UNKNOWN        Position = "N/A"
)

// ParsePosition maps the platform's numeric position id to its label.
func ParsePosition(id int) Position {
	switch id {
	case 1:
		return POS_PORTERO
	case 2:
		return POS_DEFENSA
	case 3:
		return POS_CENTROCAMPISTA
	case 4:
		return POS_DELANTERO
	default:
		return POS_UNKNOWN
	}
}
