package astk

// SurfaceEdge names one of the four boundary edges of a patch.
//
//	North
//	^
//	|
//	|
//	|________> u
//	South
//
// North and East are the far boundaries of the control grid, so their
// continuity indices count backwards from the end of a row or column.
type SurfaceEdge int

const (
	North SurfaceEdge = iota
	South
	East
	West
)

func (this SurfaceEdge) String() string {
	switch this {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return "SurfaceEdge(invalid)"
}

// SurfaceCorner names one of the four corners of a patch.
type SurfaceCorner int

const (
	Northeast SurfaceCorner = iota
	Northwest
	Southwest
	Southeast
)

func (this SurfaceCorner) String() string {
	switch this {
	case Northeast:
		return "Northeast"
	case Northwest:
		return "Northwest"
	case Southwest:
		return "Southwest"
	case Southeast:
		return "Southeast"
	}
	return "SurfaceCorner(invalid)"
}
