package starblitz

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/starblitz/internal/core"
)

// Particle is one transient visual: a drifting glyph, or a floating text
// when Text is non-empty.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Char  rune
	Color core.Color
	Text  string
	Life  int
}

// ParticleSystem is a budgeted pool satisfying combat.EffectSink. Spawns
// beyond the budget are dropped; the engine checks Capacity before purely
// decorative effects, so dropping only happens under real pressure.
type ParticleSystem struct {
	particles []Particle
	max       int
	rng       *rand.Rand
}

// NewParticleSystem creates an empty pool with the given budget.
func NewParticleSystem(max int) *ParticleSystem {
	ps := &ParticleSystem{}
	ps.Reset(max, 0)
	return ps
}

// Reset clears the pool and reseeds the jitter source.
func (ps *ParticleSystem) Reset(max int, seed int64) {
	if max < 0 {
		max = 0
	}
	ps.max = max
	ps.particles = ps.particles[:0]
	ps.rng = rand.New(rand.NewSource(seed))
}

// Capacity returns the remaining particle budget.
func (ps *ParticleSystem) Capacity() int {
	return ps.max - len(ps.particles)
}

func (ps *ParticleSystem) add(p Particle) {
	if len(ps.particles) >= ps.max {
		return
	}
	ps.particles = append(ps.particles, p)
}

// SpawnTrail leaves a single fading glyph behind a projectile.
func (ps *ParticleSystem) SpawnTrail(pos core.Vec2, color core.Color, size float64) {
	ps.add(Particle{
		Pos:   pos,
		Char:  '·',
		Color: color,
		Life:  4 + int(size*4),
	})
}

// SpawnExplosion emits a ring of glyphs with jittered directions and
// speeds. decay sets the fade rate; lifetime is proportional to 1/decay.
func (ps *ParticleSystem) SpawnExplosion(pos core.Vec2, count int, color core.Color, speed, size, decay float64) {
	life := fadeLife(decay)
	char := '*'
	if size >= 1.2 {
		char = '✦'
	}
	for i := 0; i < count; i++ {
		angle := (float64(i) + ps.rng.Float64()) / float64(count) * 2 * math.Pi
		vel := core.FromAngle(angle).Scale(speed * (0.4 + ps.rng.Float64()*0.6))
		ps.add(Particle{
			Pos:   pos,
			Vel:   vel,
			Char:  char,
			Color: color,
			Life:  life - ps.rng.Intn(life/3+1),
		})
	}
}

// SpawnDebris emits slow scattered fragments.
func (ps *ParticleSystem) SpawnDebris(pos core.Vec2, count int, color core.Color, speed float64) {
	for i := 0; i < count; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		vel := core.FromAngle(angle).Scale(speed * ps.rng.Float64())
		ps.add(Particle{
			Pos:   pos,
			Vel:   vel,
			Char:  '·',
			Color: color,
			Life:  20 + ps.rng.Intn(20),
		})
	}
}

// SpawnScoreText floats a point award upward from the kill site.
func (ps *ParticleSystem) SpawnScoreText(pos core.Vec2, text string, color core.Color) {
	ps.add(Particle{
		Pos:   pos,
		Vel:   core.V(0, -0.12),
		Text:  text,
		Color: color,
		Life:  45,
	})
}

// SpawnBossHit flashes a short burst marker at the impact point.
func (ps *ParticleSystem) SpawnBossHit(pos core.Vec2) {
	ps.add(Particle{
		Pos:   pos,
		Char:  '✺',
		Color: core.ColorBrightWhite,
		Life:  5,
	})
	for i := 0; i < 3; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		ps.add(Particle{
			Pos:   pos,
			Vel:   core.FromAngle(angle).Scale(0.5),
			Char:  '·',
			Color: core.ColorBrightWhite,
			Life:  8,
		})
	}
}

// Update integrates positions, applies drag, and expires particles.
// Removal walks backwards with swap-remove, same as the engine's pools.
func (ps *ParticleSystem) Update() {
	for i := len(ps.particles) - 1; i >= 0; i-- {
		p := &ps.particles[i]
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel = p.Vel.Scale(0.92)
		p.Life--
		if p.Life <= 0 {
			last := len(ps.particles) - 1
			ps.particles[i] = ps.particles[last]
			ps.particles = ps.particles[:last]
		}
	}
}

// Particles exposes the live pool for rendering.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// fadeLife converts a decay rate into a tick lifetime.
func fadeLife(decay float64) int {
	if decay <= 0 {
		return 30
	}
	life := int(0.6 / decay)
	if life < 8 {
		life = 8
	}
	if life > 60 {
		life = 60
	}
	return life
}

// ShakeCamera produces a decaying random cell offset for impact feedback.
// It satisfies combat.Camera.
type ShakeCamera struct {
	timer     int
	intensity float64
	offX      int
	offY      int
	rng       *rand.Rand
}

// Reset clears any active shake and reseeds the jitter source.
func (c *ShakeCamera) Reset(seed int64) {
	c.timer = 0
	c.intensity = 0
	c.offX, c.offY = 0, 0
	c.rng = rand.New(rand.NewSource(seed))
}

// AddShake starts or extends a shake. Overlapping requests keep the longer
// duration and the stronger intensity.
func (c *ShakeCamera) AddShake(duration int, intensity float64) {
	if duration > c.timer {
		c.timer = duration
	}
	if intensity > c.intensity {
		c.intensity = intensity
	}
}

// Update advances the shake by one frame.
func (c *ShakeCamera) Update() {
	if c.timer <= 0 {
		c.offX, c.offY = 0, 0
		c.intensity = 0
		return
	}
	c.timer--
	c.offX = c.rng.Intn(3) - 1
	c.offY = c.rng.Intn(3) - 1
	if c.intensity < 0.5 {
		// Weak hits only wobble horizontally
		c.offY = 0
	}
	c.intensity *= 0.93
}

// Offset returns the cell offset to apply when drawing the arena.
func (c *ShakeCamera) Offset() (int, int) {
	return c.offX, c.offY
}
