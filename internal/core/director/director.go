package director

import (
	"sync"

	"github.com/skirmish/skirmish/internal/core/fsm"
	"github.com/skirmish/skirmish/internal/core/observability/log"
	"github.com/skirmish/skirmish/internal/core/strategy"
)

// Director owns the per-step update order for a set of character machines and
// enemy selectors. Controllers stay independent of each other; the director
// only fans calls out to them.
type Director struct {
	mu     sync.RWMutex
	logger log.Log

	characters []*fsm.Machine
	enemies    []*strategy.Selector
}

// ControllerState is a read-only snapshot of one controller, for logging and
// debug output.
type ControllerState struct {
	Name     string
	Mode     string
	Health   int
	X, Y     float64
	Grounded bool
}

func New(logger log.Log) *Director {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Director{logger: logger}
}

func (d *Director) AddCharacter(m *fsm.Machine) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.characters = append(d.characters, m)
}

func (d *Director) AddEnemy(s *strategy.Selector) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enemies = append(d.enemies, s)
}

// Update advances every controller by one step.
func (d *Director) Update(dt float64) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, m := range d.characters {
		m.Update(dt)
	}
	for _, s := range d.enemies {
		s.Update(dt)
	}
}

// HandleInput forwards a raw input code to every character machine.
func (d *Director) HandleInput(code int) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, m := range d.characters {
		m.HandleInput(code)
	}
}

// SetPlayerPosition makes every enemy target the given point.
func (d *Director) SetPlayerPosition(x, y float64) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, s := range d.enemies {
		s.Entity().SetTarget(x, y)
	}
}

// ClearTargets removes every enemy's target.
func (d *Director) ClearTargets() {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, s := range d.enemies {
		s.Entity().ClearTarget()
	}
}

// DamageEnemies applies flat damage to all enemies.
func (d *Director) DamageEnemies(damage int) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, s := range d.enemies {
		s.Entity().TakeDamage(damage)
	}
}

// AliveEnemies counts enemies with health remaining.
func (d *Director) AliveEnemies() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	alive := 0
	for _, s := range d.enemies {
		if s.Entity().Alive() {
			alive++
		}
	}
	return alive
}

// Snapshot reports every controller's current mode and vitals.
func (d *Director) Snapshot() []ControllerState {
	d.mu.RLock()
	defer d.mu.RUnlock()

	states := make([]ControllerState, 0, len(d.characters)+len(d.enemies))
	for _, m := range d.characters {
		e := m.Entity()
		states = append(states, ControllerState{
			Name:     e.Name(),
			Mode:     m.Current().String(),
			Health:   e.Health(),
			X:        e.Position().X,
			Y:        e.Position().Y,
			Grounded: e.Grounded(),
		})
	}
	for _, s := range d.enemies {
		e := s.Entity()
		states = append(states, ControllerState{
			Name:   e.Name(),
			Mode:   s.Current().String(),
			Health: e.Health(),
			X:      e.Position().X,
			Y:      e.Position().Y,
		})
	}
	return states
}

// LogSnapshot writes the current snapshot at debug level.
func (d *Director) LogSnapshot() {
	for _, st := range d.Snapshot() {
		d.logger.Debug("controller state",
			log.String("entity", st.Name),
			log.String("mode", st.Mode),
			log.Int("health", st.Health),
			log.Float64("x", st.X),
			log.Float64("y", st.Y),
		)
	}
}
