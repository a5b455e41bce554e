//go:build !matdebug

package math

const debugChecks = false

const debugOrthonormalEps = 1e-3
