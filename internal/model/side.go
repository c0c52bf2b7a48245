package model

// Side identifies one of the two rosters in a battle.
type Side int

const (
	SidePlayer Side = 0
	SideEnemy  Side = 1
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	return 1 - s
}

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "enemy"
}
