package fhss

import "testing"

func TestBuildSequenceSyncSlots(t *testing.T) {
	const freqCount = 8
	const sync = 3
	seq := BuildSequence(12345, freqCount, sync)

	for slot := 0; slot < SequenceLen; slot += freqCount {
		if seq[slot] != sync {
			t.Fatalf("slot %d: expected sync channel %d, got %d", slot, sync, seq[slot])
		}
	}
}

func TestBuildSequenceNonSyncDistribution(t *testing.T) {
	const freqCount = 8
	const sync = 3
	seq := BuildSequence(777, freqCount, sync)

	counts := make(map[uint8]int)
	for slot := 0; slot < SequenceLen; slot++ {
		if slot%freqCount == 0 {
			continue
		}
		counts[seq[slot]]++
	}

	if len(counts) != freqCount-1 {
		t.Fatalf("expected %d distinct non-sync channels, got %d", freqCount-1, len(counts))
	}

	min, max := -1, -1
	for ch := 0; ch < freqCount; ch++ {
		if ch == sync {
			continue
		}
		c := counts[uint8(ch)]
		if min == -1 || c < min {
			min = c
		}
		if max == -1 || c > max {
			max = c
		}
	}
	if max-min > 1 {
		t.Fatalf("non-sync channel distribution too uneven: min=%d max=%d", min, max)
	}
}

func TestBuildSequenceDeterministic(t *testing.T) {
	a := BuildSequence(42, 10, 2)
	b := BuildSequence(42, 10, 2)
	if a != b {
		t.Fatal("two generations with identical inputs must produce identical tables")
	}
}

func TestBuildSequenceDifferentSeed(t *testing.T) {
	a := BuildSequence(1, 10, 2)
	b := BuildSequence(2, 10, 2)
	if a == b {
		t.Fatal("different seeds should (almost certainly) produce different tables")
	}
}
