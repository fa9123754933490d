package astk

import "fmt"

// NegativeWeightError reports a negative control-point weight, either passed
// to a constructor or produced by a continuity enforcement step. When
// returned mid-enforcement, rows already processed have been rewritten on
// the target patch; the caller must not treat the patch as joined.
type NegativeWeightError struct {
	Weight float64
}

func (this NegativeWeightError) Error() string {
	return fmt.Sprintf("negative weight %v: all weights must be non-negative", this.Weight)
}

// InvalidGeometryError reports degenerate construction input, such as a
// revolution whose start and end angles coincide.
type InvalidGeometryError struct {
	Reason string
}

func (this InvalidGeometryError) Error() string {
	return this.Reason
}

// InvalidEdgeError reports an unrecognized surface edge enumerant. This is a
// programmer error and is delivered by panic, never by a silent default.
type InvalidEdgeError struct {
	Edge SurfaceEdge
}

func (this InvalidEdgeError) Error() string {
	return fmt.Sprintf("invalid surface edge value %d", int(this.Edge))
}

// InvalidCornerError reports an unrecognized surface corner enumerant.
// Delivered by panic, like InvalidEdgeError.
type InvalidCornerError struct {
	Corner SurfaceCorner
}

func (this InvalidCornerError) Error() string {
	return fmt.Sprintf("invalid surface corner value %d", int(this.Corner))
}
