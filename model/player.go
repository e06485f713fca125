package model

// Player is one entry of the platform's competition-wide player
// database, keyed by the platform's numeric id.
type Player struct {
	ID           int64
	Name         string
	Position     Position
	Price        int64
	AltPositions bool
}

// MultiPositionLabel renders the alternate-position flag the way the
// squad export expects it.
func (p *Player) MultiPositionLabel() string {
	if p.AltPositions {
		return "Sí"
	}
	return "No"
}

// SquadPlayer is one slot of a manager's squad: the player id plus the
// owner's clause value for it.
type SquadPlayer struct {
	ID     int64
	Clause int64
}

// SquadRow is one line of the squad analysis export: a squad slot
// enriched with analytics and tips data.
type SquadRow struct {
	Manager       string
	Player        string
	Position      Position
	MultiPosition string
	Value         int64
	Clause        int64
	Coefficient   string
	ExpectedScore string
	Tip           string
}
