package projectile

import (
	"github.com/kamstrup/intmap"
	"github.com/simukka/starship-sorades-3d/debug"
	"github.com/simukka/starship-sorades-3d/scene"
)

// Registry is the set of live lasers of one faction. Storage is a fixed pool
// with swap-and-pop release; an id index allows O(1) lookup from collision
// callbacks.
type Registry struct {
	Name        string
	MaxDistance float64

	pool        []*Laser
	activeCount int
	index       *intmap.Map[uint32, *Laser]
	nextID      uint32
}

// NewRegistry pre-allocates capacity lasers. Lasers that travel further than
// maxDistance are released by Update; zero disables the limit.
func NewRegistry(name string, capacity int, maxDistance float64) *Registry {
	r := &Registry{
		Name:        name,
		MaxDistance: maxDistance,
		pool:        make([]*Laser, capacity),
		index:       intmap.New[uint32, *Laser](capacity),
	}
	for i := range r.pool {
		r.pool[i] = newLaser(i)
	}
	return r
}

// Acquire takes a laser from the pool, or returns nil if it is exhausted.
func (r *Registry) Acquire() *Laser {
	if r.activeCount >= len(r.pool) {
		debug.DebugWarn("projectile: registry", r.Name, "exhausted at", len(r.pool))
		return nil
	}
	l := r.pool[r.activeCount]
	l.PoolIndex = r.activeCount
	r.activeCount++

	r.nextID++
	if r.nextID == 0 {
		r.nextID = 1
	}
	l.ID = r.nextID
	l.Group.Visible = true
	r.index.Put(l.ID, l)
	return l
}

// Release returns the laser with the given id to the pool.
func (r *Registry) Release(id uint32) bool {
	l, ok := r.index.Get(id)
	if !ok {
		return false
	}
	r.index.Del(id)
	l.Group.Visible = false

	idx := l.PoolIndex
	last := r.activeCount - 1
	if idx != last {
		r.pool[idx], r.pool[last] = r.pool[last], r.pool[idx]
		r.pool[idx].PoolIndex = idx
		r.pool[last].PoolIndex = last
	}
	r.activeCount--
	return true
}

// Get looks up a live laser by id.
func (r *Registry) Get(id uint32) (*Laser, bool) {
	return r.index.Get(id)
}

// Len returns the number of live lasers.
func (r *Registry) Len() int {
	return r.activeCount
}

// Cap returns the pool size.
func (r *Registry) Cap() int {
	return len(r.pool)
}

// ForEach visits live lasers newest first. The visited laser may be released
// from inside fn; returning false stops the iteration.
func (r *Registry) ForEach(fn func(*Laser) bool) {
	for i := r.activeCount - 1; i >= 0; i-- {
		if i >= r.activeCount {
			continue
		}
		if !fn(r.pool[i]) {
			return
		}
	}
}

// Update moves every live laser one step and releases the ones that flew
// past MaxDistance.
func (r *Registry) Update() {
	r.ForEach(func(l *Laser) bool {
		l.step()
		if r.MaxDistance > 0 && l.Travelled > r.MaxDistance {
			r.Release(l.ID)
		}
		return true
	})
}

// Clear releases every laser.
func (r *Registry) Clear() {
	for i := 0; i < r.activeCount; i++ {
		r.pool[i].Group.Visible = false
	}
	r.index.Clear()
	r.activeCount = 0
}

// Attach parents every pooled laser's group under layer so renderers can
// mirror them. Only live lasers are visible.
func (r *Registry) Attach(layer *scene.Group) {
	for _, l := range r.pool {
		layer.Add(l.Group)
	}
}
