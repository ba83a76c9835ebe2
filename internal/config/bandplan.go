package config

import (
	"fmt"

	"github.com/radio-control/fhsscore/internal/fhss"
)

// BandPlanEntry is the YAML-facing description of one domain's band
// descriptor plus the sequence parameters paired with it (spec §6: "a
// static table of band descriptors indexed by domain id").
type BandPlanEntry struct {
	Domain      string `yaml:"domain"`
	FreqStart   uint32 `yaml:"freq_start_hz"`
	FreqStop    uint32 `yaml:"freq_stop_hz"`
	FreqCount   uint32 `yaml:"freq_count"`
	FreqCenter  uint32 `yaml:"freq_center_hz"`
	SyncChannel uint8  `yaml:"sync_channel"`
	Seed        uint32 `yaml:"seed"`
	Variant     string `yaml:"variant"`
}

// BandPlan is a table of band descriptors keyed by domain id, with an
// optional secondary domain for dual-band operation.
type BandPlan struct {
	Domains   map[string]BandPlanEntry `yaml:"domains"`
	Primary   string                   `yaml:"primary"`
	Secondary string                   `yaml:"secondary,omitempty"`
}

// Band converts a domain's entry into an fhss.Band descriptor.
func (e BandPlanEntry) Band() fhss.Band {
	return fhss.Band{
		Domain:     e.Domain,
		FreqStart:  e.FreqStart,
		FreqStop:   e.FreqStop,
		FreqCount:  e.FreqCount,
		FreqCenter: e.FreqCenter,
	}
}

// RadioVariant resolves the entry's configured chip variant name to the
// corresponding constant table.
func (e BandPlanEntry) RadioVariant() (fhss.RadioVariant, error) {
	switch e.Variant {
	case "SX127x", "":
		return fhss.VariantSX127x, nil
	case "SX128x":
		return fhss.VariantSX128x, nil
	case "LR1121":
		return fhss.VariantLR1121, nil
	default:
		return fhss.RadioVariant{}, fmt.Errorf("config: unknown radio variant %q", e.Variant)
	}
}

// GetEntry looks up a domain's band-plan entry.
func (p *BandPlan) GetEntry(domain string) (BandPlanEntry, error) {
	if p == nil || p.Domains == nil {
		return BandPlanEntry{}, fmt.Errorf("config: no band plan configured")
	}
	entry, ok := p.Domains[domain]
	if !ok {
		return BandPlanEntry{}, fmt.Errorf("config: domain %q not found in band plan", domain)
	}
	return entry, nil
}

// HasDomain reports whether domain is present in the plan.
func (p *BandPlan) HasDomain(domain string) bool {
	if p == nil || p.Domains == nil {
		return false
	}
	_, ok := p.Domains[domain]
	return ok
}

// AvailableDomains lists the domain ids present in the plan.
func (p *BandPlan) AvailableDomains() []string {
	if p == nil || p.Domains == nil {
		return []string{}
	}
	domains := make([]string, 0, len(p.Domains))
	for domain := range p.Domains {
		domains = append(domains, domain)
	}
	return domains
}

// IsDualBand reports whether both a primary and secondary domain are configured.
func (p *BandPlan) IsDualBand() bool {
	return p != nil && p.Primary != "" && p.Secondary != ""
}
