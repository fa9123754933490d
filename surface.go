package astk

import "github.com/ungerik/go3d/float64/vec3"

// UV is a parameter pair on a surface, each component normally in [0, 1].
type UV [2]float64

// Surface is the evaluation contract shared by all patch variants. A
// rational or NURBS surface with every weight equal to 1 evaluates
// identically to the polynomial surface over the same control net.
type Surface interface {
	Point(uv UV) vec3.T
	Sample(nu, nv int) [][]vec3.T
	Interchange() *Interchange
}

// Interchange is the boundary representation handed to an external
// interchange-entity builder (record layout, delimiters, and pointer
// numbering are that collaborator's concern, not the kernel's). Weights is
// nil for polynomial surfaces; the knot vectors are empty for pure Bezier
// patches.
type Interchange struct {
	ControlPoints  [][]vec3.T
	Weights        [][]float64
	KnotsU, KnotsV []float64
	DegreeU        int
	DegreeV        int
}

// linspace returns numPoints samples from lo to hi inclusive. A single
// sample collapses to lo.
func linspace(lo, hi float64, numPoints int) []float64 {
	ts := make([]float64, numPoints)
	if numPoints == 1 {
		ts[0] = lo
		return ts
	}

	step := (hi - lo) / float64(numPoints-1)
	for i := range ts {
		ts[i] = lo + float64(i)*step
	}
	ts[numPoints-1] = hi

	return ts
}

func sampleGrid(nu, nv int, eval func(UV) vec3.T) [][]vec3.T {
	us := linspace(0, 1, nu)
	vs := linspace(0, 1, nv)

	grid := make([][]vec3.T, nu)
	for i := range grid {
		grid[i] = make([]vec3.T, nv)
		for j := range grid[i] {
			grid[i][j] = eval(UV{us[i], vs[j]})
		}
	}

	return grid
}

func edgeSamples(s interface{ Point(UV) vec3.T }, edge SurfaceEdge, numPoints int) []vec3.T {
	ts := linspace(0, 1, numPoints)
	pts := make([]vec3.T, len(ts))
	for k, t := range ts {
		switch edge {
		case North:
			pts[k] = s.Point(UV{t, 1})
		case South:
			pts[k] = s.Point(UV{t, 0})
		case East:
			pts[k] = s.Point(UV{1, t})
		case West:
			pts[k] = s.Point(UV{0, t})
		default:
			panic(InvalidEdgeError{edge})
		}
	}

	return pts
}

// edgeDerivSamples walks an edge evaluating one of the two partial
// derivatives: the one across the edge when perp is set, the one along it
// otherwise.
func edgeDerivSamples(derivU, derivV func(UV) vec3.T, edge SurfaceEdge, numPoints int, perp bool) []vec3.T {
	ts := linspace(0, 1, numPoints)
	derivs := make([]vec3.T, len(ts))
	for k, t := range ts {
		switch edge {
		case North:
			if perp {
				derivs[k] = derivV(UV{t, 1})
			} else {
				derivs[k] = derivU(UV{t, 1})
			}
		case South:
			if perp {
				derivs[k] = derivV(UV{t, 0})
			} else {
				derivs[k] = derivU(UV{t, 0})
			}
		case East:
			if perp {
				derivs[k] = derivU(UV{1, t})
			} else {
				derivs[k] = derivV(UV{1, t})
			}
		case West:
			if perp {
				derivs[k] = derivU(UV{0, t})
			} else {
				derivs[k] = derivV(UV{0, t})
			}
		default:
			panic(InvalidEdgeError{edge})
		}
	}

	return derivs
}

func clonePoints(points [][]vec3.T) [][]vec3.T {
	clone := make([][]vec3.T, len(points))
	for i := range clone {
		clone[i] = append([]vec3.T(nil), points[i]...)
	}

	return clone
}

func cloneWeights(weights [][]float64) [][]float64 {
	clone := make([][]float64, len(weights))
	for i := range clone {
		clone[i] = append([]float64(nil), weights[i]...)
	}

	return clone
}

func checkGrid(points [][]vec3.T) {
	if len(points) == 0 || len(points[0]) == 0 {
		panic("control point grid must have at least one row and one column")
	}
	for _, row := range points {
		if len(row) != len(points[0]) {
			panic("control point grid must be rectangular")
		}
	}
}
