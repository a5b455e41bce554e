//go:build matdebug

package math

// debugChecks enables precondition panics in the unchecked inversion paths.
const debugChecks = true

// debugOrthonormalEps is the tolerance used by the Euclidean inverse assertion.
const debugOrthonormalEps = 1e-3
