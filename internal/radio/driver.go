package radio

import (
	"fmt"
	"sync"
	"time"
)

// Slot identifies one of the two radios in a diversity pair.
type Slot uint8

const (
	RadioOne Slot = 0
	RadioTwo Slot = 1
)

func (s Slot) String() string {
	switch s {
	case RadioOne:
		return "RADIO_1"
	case RadioTwo:
		return "RADIO_2"
	default:
		return "UNKNOWN"
	}
}

// Driver is the minimal seam a physical or simulated radio binding
// implements: receive a channel frequency in Hz, tune to it.
type Driver interface {
	SetFrequency(hz uint32) error
}

// status tracks the last frequency pushed to a slot, for diagnostics.
type status struct {
	lastFreqHz uint32
	lastSetAt  time.Time
	set        bool
}

// Registry binds a Driver to each of the two radio slots and routes
// frequency updates to whichever one is attached.
type Registry struct {
	mu      sync.RWMutex
	drivers [2]Driver
	status  [2]status
}

// NewRegistry constructs an empty registry; both slots start unattached.
func NewRegistry() *Registry {
	return &Registry{}
}

// Attach installs d as the driver for slot, replacing any previous one.
func (r *Registry) Attach(slot Slot, d Driver) error {
	if slot > RadioTwo {
		return fmt.Errorf("radio: invalid slot %d", slot)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drivers[slot] = d
	return nil
}

// Detach removes the driver from slot, if any.
func (r *Registry) Detach(slot Slot) {
	if slot > RadioTwo {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drivers[slot] = nil
}

// IsAttached reports whether a driver is installed for slot.
func (r *Registry) IsAttached(slot Slot) bool {
	if slot > RadioTwo {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.drivers[slot] != nil
}

// SetFrequency routes a tune request to the driver attached to slot.
func (r *Registry) SetFrequency(slot Slot, hz uint32) error {
	if slot > RadioTwo {
		return fmt.Errorf("radio: invalid slot %d", slot)
	}

	r.mu.Lock()
	d := r.drivers[slot]
	r.mu.Unlock()

	if d == nil {
		return fmt.Errorf("radio: no driver attached to %s", slot)
	}

	if err := d.SetFrequency(hz); err != nil {
		return fmt.Errorf("radio: %s SetFrequency(%d): %w", slot, hz, err)
	}

	r.mu.Lock()
	r.status[slot] = status{lastFreqHz: hz, lastSetAt: time.Now(), set: true}
	r.mu.Unlock()
	return nil
}

// LastFrequency returns the last frequency successfully pushed to slot,
// and whether one has ever been set.
func (r *Registry) LastFrequency(slot Slot) (uint32, bool) {
	if slot > RadioTwo {
		return 0, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	st := r.status[slot]
	return st.lastFreqHz, st.set
}
