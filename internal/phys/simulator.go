package phys

import "github.com/kvat/celldrift/internal/vec"

// initialCapacity is the registry's starting capacity. Growth beyond it is
// amortized doubling; particle identities survive reallocation.
const initialCapacity = 1000

// StepStats counts the outcomes of the last Update call.
type StepStats struct {
	// Moved is the number of particles whose tentative position was
	// committed.
	Moved int
	// Blocked is the number of particles whose transition was refused by
	// the world and whose velocity was halved instead.
	Blocked int
}

// Simulator advances all registered particles through the world, one
// velocity-Verlet step per Update call. The scheme is modified to stay
// accurate for velocity-dependent forces such as fluid drag; see Update.
//
// Simulator is NOT thread-safe.
type Simulator struct {
	world   World
	gravity vec.Vec3

	particles []*Particle

	last StepStats
}

// New returns a simulator over the given world. The world is mandatory;
// passing nil returns ErrNoWorld. Gravity defaults to (0, 0, -9.81).
func New(world World) (*Simulator, error) {
	if world == nil {
		return nil, ErrNoWorld
	}
	return &Simulator{
		world:     world,
		gravity:   vec.New(0, 0, -9.81),
		particles: make([]*Particle, 0, initialCapacity),
	}, nil
}

// SetGravity sets gravity as an acceleration, added after the cell forces
// have been converted to acceleration. For Earth use (0, 0, -9.81).
func (s *Simulator) SetGravity(g vec.Vec3) {
	s.gravity = g
}

func (s *Simulator) Gravity() vec.Vec3 { return s.gravity }

// AddParticle registers a particle. Adding nil is a no-op, not an error.
// Amortized O(1).
func (s *Simulator) AddParticle(p *Particle) {
	if p == nil {
		return
	}
	s.particles = append(s.particles, p)
}

// RemoveParticle unregisters a particle, if present. The matching slot is
// overwritten with the last live entry, so registry order is not
// preserved; since particles never interact, order has no observable
// effect. O(n) to find, O(1) to remove.
func (s *Simulator) RemoveParticle(p *Particle) {
	if p == nil {
		return
	}
	for i, q := range s.particles {
		if q == p {
			last := len(s.particles) - 1
			s.particles[i] = s.particles[last]
			s.particles[last] = nil
			s.particles = s.particles[:last]
			return
		}
	}
}

// Len returns the number of registered particles.
func (s *Simulator) Len() int { return len(s.particles) }

// Particles returns the live registry. The slice is the simulator's own
// backing storage; callers must not add or remove entries through it.
func (s *Simulator) Particles() []*Particle { return s.particles }

// LastStats returns the moved/blocked tallies of the most recent Update.
func (s *Simulator) LastStats() StepStats { return s.last }

// Update advances every registered particle by dt time units.
//
// The integrator is velocity Verlet with lambda = 1, rearranged to cut a
// few divisions (Groot & Warren 1997): the tentative position uses only
// the old acceleration, then the velocity is advanced with the full old
// acceleration and corrected with half the difference between the old
// acceleration and the one recomputed at the new position. The
// recomputation happens in whatever cell the new position lands in, so
// forces and buoyancy may change mid-step.
//
// If the world refuses the transition (impassable cell or out of bounds),
// the position is left untouched and the velocity is halved. That is a
// deliberate damping heuristic, not a contact solver: it signals the
// collision and converges the particle to rest against the obstacle over
// subsequent steps, deferring the exact contact point to the next step.
//
// dt is unchecked. Nothing clamps velocities or positions; non-finite
// values propagate.
func (s *Simulator) Update(dt float64) {
	dt2 := dt / 2.0

	var stats StepStats
	var netGravity, acc, newpos vec.Vec3

	for _, p := range s.particles {
		oldpos := p.center
		vel := &p.vel

		cell := s.world.CellAt(p.center)

		// Gravity must be corrected by the buoyancy. Normally only the
		// z component matters, but nothing here limits gravity to z.
		buoyancy := cell.Buoyancy(p)
		netGravity = s.gravity.Scaled(buoyancy)

		// Gravitational force is m*g, so it is added after the cell
		// forces have been divided by the mass: it stays stored as an
		// acceleration, independent of mass.
		force := cell.Forces(p)
		acc.X = force.X*p.invmass + netGravity.X
		acc.Y = force.Y*p.invmass + netGravity.Y
		acc.Z = force.Z*p.invmass + netGravity.Z

		newpos.X = oldpos.X + dt*(vel.X+dt2*acc.X)
		newpos.Y = oldpos.Y + dt*(vel.Y+dt2*acc.Y)
		newpos.Z = oldpos.Z + dt*(vel.Z+dt2*acc.Z)

		if s.world.CanMoveTo(oldpos, newpos) {
			p.SetCenter(newpos)

			vel.X += dt * acc.X
			vel.Y += dt * acc.Y
			vel.Z += dt * acc.Z

			// The new position may be in another cell; the corrector
			// evaluates forces and buoyancy there, with the velocity
			// already advanced (that is the lambda = 1 prediction).
			cell = s.world.CellAt(newpos)
			buoyancy = cell.Buoyancy(p)
			netGravity = s.gravity.Scaled(buoyancy)
			force = cell.Forces(p)

			vel.X += dt2 * (acc.X - (force.X*p.invmass + netGravity.X))
			vel.Y += dt2 * (acc.Y - (force.Y*p.invmass + netGravity.Y))
			vel.Z += dt2 * (acc.Z - (force.Z*p.invmass + netGravity.Z))

			stats.Moved++
		} else {
			// The particle should only move up to the border between
			// the cells. For now the velocity is halved and the problem
			// is postponed to the next time step.
			vel.Div(2.0)

			stats.Blocked++
		}

		// Introspection only; the next step recomputes from scratch.
		p.acc.Set(acc)
	}

	s.last = stats
}
