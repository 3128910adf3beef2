// Package dome computes the surface area and Martian weight of a
// hemispherical dome shell.
//
// # Model
//
//   - Area is the curved hemisphere surface, 2πr², without the base disk.
//   - Shell volume uses the thin-shell approximation: area × thickness.
//   - Weight is volume × density scaled by MarsGravityRatio.
//
// Area and weight are rounded to three decimals, half to even. Compute is pure:
// it performs no I/O and keeps no state.
package dome
