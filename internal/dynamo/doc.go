// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types for numerical
// integration of ordinary differential equations:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical integrator interface
//
// # Example
//
//	dyn := physics.NewLorenz(physics.DefaultParams())
//	integ := integrators.NewEuler()
//	next := integ.Step(dyn, dynamo.State{0.1, 0, 0}, 0, 0.005)
//
// States are never mutated in place by integrators; each step returns a new
// slice, so trajectories may share earlier states by reference.
package dynamo
