// Package physics provides the Lorenz vector field.
//
// [Lorenz] implements [dynamo.System] and [dynamo.Configurable]:
//
//	dx/dt = σ(y − x)
//	dy/dt = x(ρ − z) − y
//	dz/dt = xy − βz
//
// Parameters are fixed at construction; there is no setter, so a system
// shared across goroutines is safe to read.
package physics
