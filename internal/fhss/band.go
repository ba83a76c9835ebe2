package fhss

// SequenceLen is the fixed length of every generated channel sequence
// (spec §3: "fixed array of 256 channel indices").
const SequenceLen = 256

// Band is an immutable, table-resident band descriptor (spec §3).
type Band struct {
	Domain     string // human-readable domain tag, e.g. "FCC915"
	FreqStart  uint32 // Hz
	FreqStop   uint32 // Hz
	FreqCount  uint32 // number of discrete channels in the band
	FreqCenter uint32 // Hz
}

// Spread returns the per-channel frequency step, per spec §4.B:
// spread = (freq_stop - freq_start) / (freq_count - 1).
func (b *Band) Spread() uint32 {
	if b.FreqCount < 2 {
		return 0
	}
	return (b.FreqStop - b.FreqStart) / (b.FreqCount - 1)
}

// RadioVariant bundles the chip-dependent constants referenced by spec §9
// ("radio-variant constants... per-variant constant table selected at
// init, not preprocessor branches"). FREQ_STEP is only meaningful for
// step-register radios (SpreadScale other than 1); direct-Hz radios
// (LR1121) report FreqStep 1 and are unaffected by it.
type RadioVariant struct {
	Name        string
	SpreadScale uint32 // FREQ_SPREAD_SCALE: 1 for direct-Hz radios, 256 for step-register radios
	FreqStep    uint32 // register granularity in Hz, used to derive FreqCorrectionMax
	CorrMaxHz   int32  // maximum magnitude of the signed correction window, in Hz
}

// MaxCorrection returns the correction bound in the variant's native
// register units (FreqCorrectionMax = CorrMaxHz / FreqStep).
func (v RadioVariant) MaxCorrection() int32 {
	if v.FreqStep == 0 {
		return v.CorrMaxHz
	}
	return v.CorrMaxHz / int32(v.FreqStep)
}

var (
	// VariantSX127x models the SX127x family (direct register step, 100kHz correction window).
	VariantSX127x = RadioVariant{Name: "SX127x", SpreadScale: 256, FreqStep: 61, CorrMaxHz: 100000}
	// VariantSX128x models the SX128x family (200kHz correction window).
	VariantSX128x = RadioVariant{Name: "SX128x", SpreadScale: 256, FreqStep: 198, CorrMaxHz: 200000}
	// VariantLR1121 models the LR1121, which addresses frequency directly in Hz.
	VariantLR1121 = RadioVariant{Name: "LR1121", SpreadScale: 1, FreqStep: 1, CorrMaxHz: 100000}
)
