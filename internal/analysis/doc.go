// Package analysis characterizes trajectory sets.
//
//   - [LyapunovExponent]: largest Lyapunov exponent via trajectory separation
//   - [ComputeSpectrum]: amplitude spectrum of one coordinate
//   - [Divergence]: distance of each trajectory from the first over time
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.LyapunovExponent(dyn, integ, x0, dt, duration, 1e-8)
//	if lambda > 0 {
//	    // System is chaotic
//	}
package analysis
