package modeswitch

import "testing"

func TestSetModeLocalDeniedUnderControllerOnly(t *testing.T) {
	s := New()
	s.SetControllerOnly(true)

	fired := false
	s.RegisterNotify(func(enabled bool, mode Mode, whenMs uint32) { fired = true })

	res := s.SetModeLocal(ModeHigh, 10)
	if res != Denied {
		t.Fatalf("expected DENIED, got %s", res)
	}
	if s.GetMode() != ModeAuto {
		t.Fatalf("mode should not have changed, got %s", s.GetMode())
	}
	if fired {
		t.Fatal("notify must not fire on a denied change")
	}
}

func TestSetModeFromControllerBypassesControllerOnly(t *testing.T) {
	s := New()
	s.SetControllerOnly(true)

	res := s.SetModeFromController(ModeHigh, 10)
	if res != OK {
		t.Fatalf("expected OK, got %s", res)
	}
	if s.GetMode() != ModeHigh {
		t.Fatalf("expected mode HIGH, got %s", s.GetMode())
	}
}

func TestSetEqualToCurrentReturnsNoChange(t *testing.T) {
	s := New()
	fired := false
	s.RegisterNotify(func(enabled bool, mode Mode, whenMs uint32) { fired = true })

	res := s.SetModeLocal(ModeAuto, 5) // already AUTO
	if res != NoChange {
		t.Fatalf("expected NOCHANGE, got %s", res)
	}
	if fired {
		t.Fatal("notify must not fire on NOCHANGE")
	}
}

func TestControllerLockScenario(t *testing.T) {
	s := New()
	var fires int
	s.RegisterNotify(func(enabled bool, mode Mode, whenMs uint32) { fires++ })

	s.SetControllerOnly(true)
	if res := s.SetModeLocal(ModeHigh, 1); res != Denied {
		t.Fatalf("expected DENIED, got %s", res)
	}
	if s.GetMode() != ModeAuto {
		t.Fatal("mode must remain unchanged after denial")
	}

	if res := s.SetModeFromController(ModeHigh, 2); res != OK {
		t.Fatalf("expected OK, got %s", res)
	}
	if s.GetMode() != ModeHigh {
		t.Fatal("mode should now be HIGH")
	}
	if fires != 1 {
		t.Fatalf("expected exactly one notify fire, got %d", fires)
	}
}

func TestSetModeLocalInvalidOutOfRange(t *testing.T) {
	s := New()
	res := s.SetModeLocal(Mode(7), 1)
	if res != Invalid {
		t.Fatalf("expected INVALID for out-of-range mode, got %s", res)
	}
}

func TestDecodeControllerCommand(t *testing.T) {
	cases := []struct {
		cmd        byte
		enabled    bool
		mode       Mode
	}{
		{0b000, false, ModeAuto},
		{0b001, true, ModeAuto},
		{0b011, true, ModeLow},
		{0b101, true, ModeHigh},
		{0b111, true, ModeAuto}, // 11 falls back to AUTO
	}
	for _, c := range cases {
		enabled, mode := DecodeControllerCommand(c.cmd)
		if enabled != c.enabled || mode != c.mode {
			t.Fatalf("cmd %03b: got (enabled=%v, mode=%s), want (enabled=%v, mode=%s)", c.cmd, enabled, mode, c.enabled, c.mode)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, mode := range []Mode{ModeAuto, ModeLow, ModeHigh} {
		for _, enabled := range []bool{true, false} {
			cmd := EncodeControllerCommand(enabled, mode)
			gotEnabled, gotMode := DecodeControllerCommand(cmd)
			if gotEnabled != enabled || gotMode != mode {
				t.Fatalf("round trip failed for (enabled=%v, mode=%s): got (%v, %s)", enabled, mode, gotEnabled, gotMode)
			}
		}
	}
}

func TestApplyControllerCommandFiresOnceForBothFields(t *testing.T) {
	s := New()
	var fires int
	s.RegisterNotify(func(enabled bool, mode Mode, whenMs uint32) { fires++ })

	cmd := EncodeControllerCommand(true, ModeHigh)
	res := s.ApplyControllerCommand(cmd, 100)
	if res != OK {
		t.Fatalf("expected OK, got %s", res)
	}
	if fires != 1 {
		t.Fatalf("expected exactly one notify even though both enabled and mode changed, got %d", fires)
	}
	status := s.GetStatus()
	if !status.Enabled || status.Mode != ModeHigh {
		t.Fatalf("unexpected status after apply: %+v", status)
	}
}

func TestApplyControllerCommandNoChange(t *testing.T) {
	s := New()
	cmd := EncodeControllerCommand(false, ModeAuto) // matches power-on state
	res := s.ApplyControllerCommand(cmd, 1)
	if res != NoChange {
		t.Fatalf("expected NOCHANGE, got %s", res)
	}
}
