package glock

import "sync"

// Radio identities for a diversity pair (spec §4.C, §6).
const (
	RadioOne uint8 = 0
	RadioTwo uint8 = 1
)

// FreqLookup resolves a sequence cursor to a carrier frequency for a given
// radio. The barrier itself is frequency-agnostic — it owns only the
// shared cursor — so the caller supplies this to pick the right band
// (primary for radio 0, secondary for radio 1 on dual-band setups) and
// pass through the fhss sequence/frequency-map lookup.
type FreqLookup func(radioID uint8, cursor uint8) uint32

// Barrier is the cross-radio hop coordination primitive (spec §4.C). Both
// radios ask it for "the next frequency" each cycle; exactly one of them
// actually advances the shared cursor, and every caller in the same cycle
// observes the same post-advance cursor.
//
// All operations are non-blocking and must complete in bounded time (spec
// §5): BeginCycle and NextSynced are intended to run with interrupts
// disabled around the read-modify-write, which a single mutex models on a
// hosted Go build.
type Barrier struct {
	mu          sync.Mutex
	armed       bool
	cursor      uint8
	epoch       uint32
	sequenceLen int
	freqLookup  FreqLookup
}

// NewBarrier constructs a Barrier over a sequence of the given length,
// using lookup to resolve cursor values to frequencies.
func NewBarrier(sequenceLen int, lookup FreqLookup) *Barrier {
	return &Barrier{sequenceLen: sequenceLen, freqLookup: lookup}
}

// BeginCycle arms the barrier and increments the epoch. Idempotent within
// a cycle only in the sense described by the spec: calling it again before
// any NextSynced call simply re-arms and bumps the epoch again, since the
// barrier has no way to distinguish "still the same cycle" from "a new
// one" except by the epoch it itself maintains.
func (b *Barrier) BeginCycle() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.armed = true
	b.epoch++
}

// NextSynced is the single-advance-per-cycle rendezvous point (spec §4.C,
// §5). The first caller in the armed state advances the cursor and
// disarms the barrier; every other caller in the same cycle observes the
// cursor unchanged. Every caller, regardless of arrival order, receives
// the frequency for the post-advance cursor.
func (b *Barrier) NextSynced(radioID uint8) uint32 {
	b.mu.Lock()
	if b.armed {
		b.cursor = uint8((int(b.cursor) + 1) % b.sequenceLen)
		b.armed = false
	}
	cursor := b.cursor
	b.mu.Unlock()
	return b.freqLookup(radioID, cursor)
}

// SyncedIndex returns the current shared cursor value.
func (b *Barrier) SyncedIndex() uint8 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursor
}

// Epoch returns the number of cycles begun so far.
func (b *Barrier) Epoch() uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.epoch
}
