// Package puzzle holds the state of one assassin puzzle: the arena, the
// assassin, the target and the guards protecting it.
package puzzle

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/meghashyamc/assassin/geometry"
	"github.com/meghashyamc/assassin/guard"
)

const (
	// maxPlacementAttempts bounds the search for a target far enough from the assassin.
	maxPlacementAttempts = 1000

	// wallInset keeps moved points strictly inside the arena.
	wallInset = 1.0
)

var ErrNoRoom = errors.New("no room to place the puzzle points")

type Settings struct {
	PointMargin   float64
	MinSeparation float64
	ShotLength    float64
	StopRadius    float64
}

// Shot is a traced shot and the marker that absorbed it, if any.
type Shot struct {
	Path       []geometry.Vector
	AbsorbedBy geometry.Label
}

type Puzzle struct {
	ID       uuid.UUID
	arena    geometry.Rectangle
	settings Settings
	assassin geometry.Vector
	target   geometry.Vector
	guards   []geometry.Vector
}

// NewRandom places the assassin and the target at integer coordinates at least
// PointMargin away from the walls and MinSeparation away from each other.
func NewRandom(arena geometry.Rectangle, settings Settings, rng *rand.Rand) (*Puzzle, error) {
	assassin, err := randomPoint(arena, settings.PointMargin, rng)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		target, err := randomPoint(arena, settings.PointMargin, rng)
		if err != nil {
			return nil, err
		}
		if target.Distance(assassin) >= settings.MinSeparation {
			return New(arena, settings, assassin, target)
		}
	}

	return nil, fmt.Errorf("target %g away from the assassin after %d attempts: %w",
		settings.MinSeparation, maxPlacementAttempts, ErrNoRoom)
}

func New(arena geometry.Rectangle, settings Settings, assassin, target geometry.Vector) (*Puzzle, error) {
	p := &Puzzle{
		ID:       uuid.New(),
		arena:    arena,
		settings: settings,
		assassin: assassin.WithLabel(geometry.LabelAssassin),
		target:   target.WithLabel(geometry.LabelTarget),
	}

	if err := p.RecomputeGuards(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Puzzle) Arena() geometry.Rectangle {
	return p.arena
}

func (p *Puzzle) Assassin() geometry.Vector {
	return p.assassin
}

func (p *Puzzle) Target() geometry.Vector {
	return p.target
}

func (p *Puzzle) Guards() []geometry.Vector {
	guards := make([]geometry.Vector, len(p.guards))
	copy(guards, p.guards)
	return guards
}

// MoveTarget moves the target to point, clamped inside the arena. The guards
// are left untouched until RecomputeGuards is called.
func (p *Puzzle) MoveTarget(point geometry.Vector) geometry.Vector {
	p.target = p.clampInside(point).WithLabel(geometry.LabelTarget)
	return p.target
}

func (p *Puzzle) MoveAssassin(point geometry.Vector) geometry.Vector {
	p.assassin = p.clampInside(point).WithLabel(geometry.LabelAssassin)
	return p.assassin
}

func (p *Puzzle) RecomputeGuards() error {
	guards, err := guard.ComputeOptimalGuards(p.arena, p.assassin, p.target)
	if err != nil {
		return fmt.Errorf("puzzle %s: %w", p.ID, err)
	}
	p.guards = guards
	return nil
}

// Shoot traces a shot from the assassin along direction. The shot stops at the
// first guard or at the target it passes within StopRadius of.
func (p *Puzzle) Shoot(direction geometry.Vector) (Shot, error) {
	ray, err := geometry.NewRay(p.assassin, direction, p.settings.ShotLength)
	if err != nil {
		return Shot{}, fmt.Errorf("aim shot: %w", err)
	}

	shot, err := traceShot(p.arena, ray, append(p.Guards(), p.target), p.settings.StopRadius)
	if err != nil {
		return Shot{}, fmt.Errorf("trace shot from %v: %w", p.assassin, err)
	}
	return shot, nil
}

// traceShot labels the shot with the stop that cut its path.
func traceShot(arena geometry.Rectangle, ray geometry.Ray, stops []geometry.Vector, stopRadius float64) (Shot, error) {
	trace, err := arena.TraceWithin(ray, stops, stopRadius)
	if err != nil {
		return Shot{}, err
	}

	shot := Shot{Path: trace.Points, AbsorbedBy: geometry.LabelNone}
	if trace.Stop >= 0 {
		shot.AbsorbedBy = stops[trace.Stop].Label
	}
	return shot, nil
}

func (p *Puzzle) clampInside(point geometry.Vector) geometry.Vector {
	return geometry.Vector{
		X: clampValue(point.X, p.arena.BottomLeft.X+wallInset, p.arena.TopRight.X-wallInset),
		Y: clampValue(point.Y, p.arena.BottomLeft.Y+wallInset, p.arena.TopRight.Y-wallInset),
	}
}

// randomPoint chooses a point with integer coordinates not too close to the arena's walls.
func randomPoint(arena geometry.Rectangle, margin float64, rng *rand.Rand) (geometry.Vector, error) {
	minX := int(math.Ceil(arena.BottomLeft.X + margin))
	maxX := int(math.Floor(arena.TopRight.X - margin))
	minY := int(math.Ceil(arena.BottomLeft.Y + margin))
	maxY := int(math.Floor(arena.TopRight.Y - margin))

	if minX > maxX || minY > maxY {
		return geometry.Vector{}, fmt.Errorf("margin %g in %v-%v: %w", margin, arena.BottomLeft, arena.TopRight, ErrNoRoom)
	}

	return geometry.Vector{
		X: float64(randomInt(rng, minX, maxX)),
		Y: float64(randomInt(rng, minY, maxY)),
	}, nil
}

func randomInt(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}

func clampValue[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		value = max
		return value
	}

	if value < min {
		value = min
	}

	return value
}
