package modeswitch

// DecodeControllerCommand unpacks the 1-byte controller command (spec §6):
// bit0 = enabled, bits1..2 = mode (00=AUTO, 01=LOW, 10=HIGH, 11=AUTO
// fallback), bits3..7 reserved and ignored on receive.
func DecodeControllerCommand(cmd byte) (enabled bool, mode Mode) {
	enabled = cmd&0x01 != 0
	switch (cmd >> 1) & 0x03 {
	case 0:
		mode = ModeAuto
	case 1:
		mode = ModeLow
	case 2:
		mode = ModeHigh
	default:
		mode = ModeAuto
	}
	return enabled, mode
}

// EncodeControllerCommand packs (enabled, mode) into the wire byte, with
// reserved bits zeroed.
func EncodeControllerCommand(enabled bool, mode Mode) byte {
	var cmd byte
	if enabled {
		cmd |= 0x01
	}
	switch mode {
	case ModeLow:
		cmd |= 0x01 << 1
	case ModeHigh:
		cmd |= 0x02 << 1
	default:
		// AUTO encodes as 00; the 11 fallback is receive-only.
	}
	return cmd
}

// ApplyControllerCommand decodes cmd and applies both the enable and mode
// changes atomically against a single controller-authored event, firing at
// most one notify even if both fields changed (spec §4.E).
func (s *Switch) ApplyControllerCommand(cmd byte, whenMs uint32) Result {
	enabled, mode := DecodeControllerCommand(cmd)

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	if s.enabled != enabled {
		s.enabled = enabled
		changed = true
	}
	if s.mode != mode {
		s.mode = mode
		changed = true
	}
	if !changed {
		return NoChange
	}
	s.lastChangeMs = whenMs
	s.notifyIfChanged()
	return OK
}
