package facade

import (
	"testing"

	"github.com/radio-control/fhsscore/internal/antijam"
	"github.com/radio-control/fhsscore/internal/glock"
	"github.com/radio-control/fhsscore/internal/modeswitch"
	"github.com/radio-control/fhsscore/internal/radio"
)

type fakeDriver struct {
	lastHz uint32
}

func (d *fakeDriver) SetFrequency(hz uint32) error {
	d.lastHz = hz
	return nil
}

type fakeMetrics struct {
	hops        int
	modeChanges int
	enables     int
}

func (m *fakeMetrics) HopFired()                  { m.hops++ }
func (m *fakeMetrics) ModeChanged(modeswitch.Mode) { m.modeChanges++ }
func (m *fakeMetrics) SwitchEnabled(bool)          { m.enables++ }

func newTestFacade(metrics MetricsSink) (*Facade, *modeswitch.Switch, *antijam.Detector, *glock.Barrier) {
	sw := modeswitch.New()
	det := antijam.NewDetector(antijam.Config{
		WindowSizePackets:       10,
		WindowMode:              antijam.WindowByCount,
		JamThresholdPercent:     30,
		MinBadPackets:           1,
		ConsecutiveWindowsToJam: 1,
		MinTimeBetweenRecoMs:    1,
	})
	barrier := glock.NewBarrier(16, func(radioID uint8, cursor uint8) uint32 {
		return uint32(radioID)<<8 | uint32(cursor)
	})
	f := New(sw, det, barrier, WithMetrics(metrics))
	return f, sw, det, barrier
}

func TestEnableTransitionResetsDetector(t *testing.T) {
	metrics := &fakeMetrics{}
	_, sw, det, _ := newTestFacade(metrics)

	for i := 0; i < 5; i++ {
		det.RegisterPacket(false, uint32(i+1))
	}
	if det.GetReport().Score == 0 {
		t.Fatal("setup: expected nonzero score before reset")
	}

	sw.SetEnabled(true, 100)

	if det.GetReport().Score != 0 {
		t.Fatalf("expected detector reset on enable transition, score=%d", det.GetReport().Score)
	}
	if metrics.enables != 1 {
		t.Fatalf("expected one SwitchEnabled metric, got %d", metrics.enables)
	}
}

func TestModeChangeWhileEnabledDoesNotResetDetector(t *testing.T) {
	metrics := &fakeMetrics{}
	_, sw, det, _ := newTestFacade(metrics)

	sw.SetEnabled(true, 1)
	for i := 0; i < 5; i++ {
		det.RegisterPacket(false, uint32(i+2))
	}
	scoreBefore := det.GetReport().Score
	if scoreBefore == 0 {
		t.Fatal("setup: expected nonzero score before mode change")
	}

	sw.SetModeFromController(modeswitch.ModeHigh, 50)

	if det.GetReport().Score != scoreBefore {
		t.Fatalf("mode change while enabled must not reset the detector: before=%d after=%d", scoreBefore, det.GetReport().Score)
	}
}

func TestDisableTransitionDoesNotResetDetector(t *testing.T) {
	metrics := &fakeMetrics{}
	_, sw, det, _ := newTestFacade(metrics)

	sw.SetEnabled(true, 1)
	for i := 0; i < 5; i++ {
		det.RegisterPacket(false, uint32(i+2))
	}
	scoreBefore := det.GetReport().Score

	sw.SetEnabled(false, 200)

	if det.GetReport().Score != scoreBefore {
		t.Fatalf("disable transition must not reset the detector: before=%d after=%d", scoreBefore, det.GetReport().Score)
	}
}

func TestHopRecommendationIgnoredWhenDisabled(t *testing.T) {
	metrics := &fakeMetrics{}
	_, sw, det, barrier := newTestFacade(metrics)
	_ = sw // stays disabled

	for i := 0; i < 10; i++ {
		det.RegisterPacket(false, uint32(i+1)) // 100% bad, 10-packet window
	}

	if barrier.Epoch() != 0 {
		t.Fatalf("expected no barrier cycles while switch disabled, epoch=%d", barrier.Epoch())
	}
	if metrics.hops != 0 {
		t.Fatalf("expected no hop metric while switch disabled, got %d", metrics.hops)
	}
}

func TestHopRecommendationFiresGlockCycleWhenEnabled(t *testing.T) {
	metrics := &fakeMetrics{}
	_, sw, det, barrier := newTestFacade(metrics)

	sw.SetEnabled(true, 1)
	for i := 0; i < 10; i++ {
		det.RegisterPacket(false, uint32(i+2)) // 100% bad, triggers JAMMED on window close
	}

	if barrier.Epoch() == 0 {
		t.Fatal("expected at least one Glock cycle after a hop recommendation")
	}
	if metrics.hops == 0 {
		t.Fatal("expected at least one HopFired metric")
	}
}

func TestForceSyncedHopHonorsEnabledFlag(t *testing.T) {
	metrics := &fakeMetrics{}
	f, sw, _, barrier := newTestFacade(metrics)

	f.ForceSyncedHop()
	if barrier.Epoch() != 0 {
		t.Fatal("forced hop should be ignored while switch disabled")
	}

	sw.SetEnabled(true, 1)
	f.ForceSyncedHop()
	if barrier.Epoch() != 1 {
		t.Fatalf("expected one forced cycle once enabled, epoch=%d", barrier.Epoch())
	}
}

func TestForceSyncedHopPushesFrequencyToAttachedDrivers(t *testing.T) {
	sw := modeswitch.New()
	det := antijam.NewDetector(antijam.Config{
		WindowSizePackets:       10,
		WindowMode:              antijam.WindowByCount,
		JamThresholdPercent:     30,
		MinBadPackets:           1,
		ConsecutiveWindowsToJam: 1,
		MinTimeBetweenRecoMs:    1,
	})
	barrier := glock.NewBarrier(16, func(radioID uint8, cursor uint8) uint32 {
		return uint32(radioID)<<8 | uint32(cursor)
	})
	registry := radio.NewRegistry()
	d1 := &fakeDriver{}
	d2 := &fakeDriver{}
	if err := registry.Attach(radio.RadioOne, d1); err != nil {
		t.Fatalf("Attach(RadioOne) error: %v", err)
	}
	if err := registry.Attach(radio.RadioTwo, d2); err != nil {
		t.Fatalf("Attach(RadioTwo) error: %v", err)
	}

	f := New(sw, det, barrier, WithRadioRegistry(registry))
	sw.SetEnabled(true, 1)
	f.ForceSyncedHop()

	cursor := uint32(barrier.SyncedIndex())
	wantD1 := uint32(glock.RadioOne)<<8 | cursor
	wantD2 := uint32(glock.RadioTwo)<<8 | cursor
	if d1.lastHz != wantD1 {
		t.Errorf("expected RadioOne driver tuned to %d, got %d", wantD1, d1.lastHz)
	}
	if d2.lastHz != wantD2 {
		t.Errorf("expected RadioTwo driver tuned to %d, got %d", wantD2, d2.lastHz)
	}
}
