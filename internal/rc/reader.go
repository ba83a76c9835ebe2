package rc

import "github.com/radio-control/fhsscore/internal/modeswitch"

// CRSF channel value bounds (172..1811 maps to 1000..2000 microseconds).
const (
	CRSFMin = 172
	CRSFMax = 1811
	crsfMid = (CRSFMin + CRSFMax) / 2

	// deadBand is the ±33-tick hysteresis band around each threshold
	// (spec §9 open question resolution) so a switch resting near a
	// boundary under mechanical jitter does not chatter between states.
	deadBand = 33

	lowThreshold  = CRSFMin + (CRSFMax-CRSFMin)/3
	highThreshold = CRSFMin + 2*(CRSFMax-CRSFMin)/3
)

// NumChannels is the CRSF channel count the reader expects (spec §6).
const NumChannels = 16

// EnableChannel and ModeChannel are the CRSF channel indices consumed by
// the reader (spec §9: "CH4 for enable, CH5 for mode"), 0-indexed.
const (
	EnableChannel = 3
	ModeChannel   = 4
)

// Reader converts CH4/CH5 into a packed controller command byte, holding
// hysteresis state across calls so a channel value sitting inside a
// threshold's dead-band does not cause spurious toggling.
type Reader struct {
	enabled bool
	mode    modeswitch.Mode
}

// NewReader constructs a Reader with the switch's power-on defaults
// (disabled, AUTO) as its initial hysteresis state.
func NewReader() *Reader {
	return &Reader{mode: modeswitch.ModeAuto}
}

// Read consumes a full 16-channel CRSF frame and returns the packed
// controller command byte for the current CH4/CH5 positions.
func (r *Reader) Read(channels [NumChannels]uint16) byte {
	r.enabled = r.decodeEnable(channels[EnableChannel], r.enabled)
	r.mode = r.decodeMode(channels[ModeChannel], r.mode)
	return modeswitch.EncodeControllerCommand(r.enabled, r.mode)
}

func (r *Reader) decodeEnable(value uint16, prev bool) bool {
	switch {
	case value > crsfMid+deadBand:
		return true
	case value < crsfMid-deadBand:
		return false
	default:
		return prev
	}
}

func (r *Reader) decodeMode(value uint16, prev modeswitch.Mode) modeswitch.Mode {
	switch {
	case value < lowThreshold-deadBand:
		return modeswitch.ModeLow
	case value > highThreshold+deadBand:
		return modeswitch.ModeHigh
	case value >= lowThreshold+deadBand && value <= highThreshold-deadBand:
		return modeswitch.ModeAuto
	default:
		return prev
	}
}
