package internal

// Epsilon is the tolerance used for knot comparison and degeneracy checks.
const Epsilon = 1e-10

// Tolerance is the looser tolerance used for geometric comparisons.
const Tolerance = 1e-6
