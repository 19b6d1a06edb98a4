// Package phys is the integration core of celldrift.
//
// It advances independent spherical point masses through a spatially
// partitioned medium:
//
//   - [Particle]: a simulated body with position history, velocity and
//     derived density
//   - [Cell]: per-region physical properties (passability, force field,
//     buoyancy) answered per particle
//   - [World]: the spatial oracle mapping points to cells and deciding
//     whether a transition between two points is legal
//   - [Simulator]: owns the particle registry and gravity, and performs
//     one velocity-Verlet step per Update call
//
// # Example
//
//	sim, _ := phys.New(world)
//	sim.AddParticle(phys.NewParticle())
//	sim.Update(0.01)
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. Particles never interact with
// one another, so a caller may shard the per-particle work across
// goroutines, but registry mutation must never race with an in-progress
// Update and the World/Cell implementations must tolerate concurrent reads.
package phys
