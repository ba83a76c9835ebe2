// Package main runs a standalone simulation of the FHSS dual-radio
// coordination core: it wires the sequence generator, frequency map,
// Glock barrier, anti-jam detector, mode switch and façade together the
// same way a real receiver's main loop would, but drives packet quality
// and RC channel input from a synthetic generator instead of a radio.
package main

import (
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/radio-control/fhsscore/internal/antijam"
	"github.com/radio-control/fhsscore/internal/config"
	"github.com/radio-control/fhsscore/internal/controllerauth"
	"github.com/radio-control/fhsscore/internal/diag"
	"github.com/radio-control/fhsscore/internal/facade"
	"github.com/radio-control/fhsscore/internal/fhss"
	"github.com/radio-control/fhsscore/internal/glock"
	"github.com/radio-control/fhsscore/internal/metrics"
	"github.com/radio-control/fhsscore/internal/modeswitch"
	"github.com/radio-control/fhsscore/internal/radio"
	"github.com/radio-control/fhsscore/internal/rc"

	"github.com/golang-jwt/jwt/v5"
)

const (
	Version    = "0.1.0"
	demoDomain = "FCC915"
)

// simDriver stands in for a real SPI/serial radio binding: it just
// logs each frequency it is asked to tune to.
type simDriver struct {
	name string
}

func (d *simDriver) SetFrequency(hz uint32) error {
	log.Printf("%s: tuned to %d Hz", d.name, hz)
	return nil
}

func main() {
	log.Printf("Starting fhsscore simulator v%s", Version)

	// Step 1: Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Println("Configuration loaded")

	band, variant := resolveBand(cfg)
	log.Printf("Band: %s, freq_count=%d, variant=%s", band.Domain, band.FreqCount, variant.Name)

	// Step 2: Build the deterministic channel sequence and wire the
	// Glock barrier's frequency lookup to it.
	const seed = 0xC0FFEE
	const syncChannel = 0
	seq := fhss.BuildSequence(seed, int(band.FreqCount), syncChannel)

	freqLookup := func(radioID uint8, cursor uint8) uint32 {
		return fhss.Frequency(&band, variant, seq[cursor], 0)
	}
	barrier := glock.NewBarrier(fhss.SequenceLen, freqLookup)

	// Step 3: Anti-jam detector and mode switch, from the baseline config.
	detector := antijam.NewDetector(cfg.Baseline.AntiJam)
	sw := modeswitch.New()

	// Step 3b: RC receiver stand-in, decoding CH4/CH5 into enable/mode
	// commands the same way a bound transmitter's channels would.
	rcReader := rc.NewReader()

	// Step 4: Attach simulated drivers to both radio slots.
	registry := radio.NewRegistry()
	if err := registry.Attach(radio.RadioOne, &simDriver{name: "RADIO_1"}); err != nil {
		log.Fatalf("Failed to attach RADIO_1 driver: %v", err)
	}
	if err := registry.Attach(radio.RadioTwo, &simDriver{name: "RADIO_2"}); err != nil {
		log.Fatalf("Failed to attach RADIO_2 driver: %v", err)
	}

	// Step 5: Diagnostics — a rotating file log plus an in-memory ring
	// for live introspection — and Prometheus metrics.
	diagLogger := diag.NewLogger("fhsscore-diag.jsonl", 5, 3)
	defer func() {
		if err := diagLogger.Close(); err != nil {
			log.Printf("Error closing diagnostic log: %v", err)
		}
	}()
	events := diag.NewEventBuffer(256)

	collector, err := metrics.NewCollector()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Step 6: Build the façade, wiring switch/detector/barrier/radios
	// together.
	sideLog := log.New(os.Stdout, "facade: ", log.LstdFlags)
	f := facade.New(sw, detector, barrier,
		facade.WithMetrics(collector),
		facade.WithLogger(sideLog),
		facade.WithRadioRegistry(registry),
	)

	// Step 7: A demo controller command, authenticated the way a real
	// paired controller's command would be, applied through the same
	// path RC input or a wire message would use.
	verifier, err := controllerauth.NewVerifier(controllerauth.VerifierConfig{
		Algorithm: "HS256",
		SecretKey: "demo-link-secret",
	})
	if err != nil {
		log.Fatalf("Failed to initialize controller verifier: %v", err)
	}
	applyDemoControllerCommand(verifier, sw, diagLogger, events)

	// Step 8: Drive a synthetic packet stream so the detector has
	// something to score, and shut down cleanly on signal.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	var nowMs uint32
	rng := rand.New(rand.NewSource(1))

	log.Println("Simulator running, Ctrl-C to stop")
	for {
		select {
		case sig := <-shutdown:
			log.Printf("Received signal %v, shutting down", sig)
			return
		case <-ticker.C:
			nowMs += 50
			good := rng.Intn(100) >= 20 // ~80% clean traffic
			detector.RegisterPacket(!good, nowMs)
			diagLogger.Log("packet", map[string]interface{}{"bad": !good, "t_ms": nowMs})
			events.Add("packet", map[string]interface{}{"bad": !good})
			collector.SetJamState(detector.GetReport().State)

			if nowMs%1000 == 0 {
				var channels [rc.NumChannels]uint16
				for i := range channels {
					channels[i] = rc.CRSFMax/2 + 1
				}
				channels[rc.EnableChannel] = rc.CRSFMax
				channels[rc.ModeChannel] = rc.CRSFMax
				cmd := rcReader.Read(channels)
				// The façade's own switch-notify callback (already wired as
				// collector's MetricsSink) reports enable/mode metrics for
				// this change; nothing further to record here.
				sw.ApplyControllerCommand(cmd, nowMs)

				status := f.Switch.GetStatus()
				log.Printf("status: enabled=%v mode=%s jam=%s epoch=%d",
					status.Enabled, status.Mode, detector.GetReport().State, barrier.Epoch())
			}
		}
	}
}

// resolveBand looks up the primary domain from the loaded band plan,
// falling back to a hardcoded FCC915 descriptor when no
// fhsscore-band-plan.yaml is present, so the simulator runs standalone.
func resolveBand(cfg *config.Config) (fhss.Band, fhss.RadioVariant) {
	if cfg.BandPlan != nil && cfg.BandPlan.Primary != "" {
		entry, err := cfg.BandPlan.GetEntry(cfg.BandPlan.Primary)
		if err == nil {
			variant, err := entry.RadioVariant()
			if err == nil {
				return entry.Band(), variant
			}
		}
	}

	return fhss.Band{
		Domain:     demoDomain,
		FreqStart:  902000000,
		FreqStop:   928000000,
		FreqCount:  80,
		FreqCenter: 915000000,
	}, fhss.VariantSX127x
}

// applyDemoControllerCommand signs and verifies a sample controller
// token, then applies its enable/mode request through the same packed
// wire format a real controller link would use.
func applyDemoControllerCommand(v *controllerauth.Verifier, sw *modeswitch.Switch, logger *diag.Logger, events *diag.EventBuffer) {
	token, err := demoSignedToken()
	if err != nil {
		log.Printf("Failed to build demo controller token: %v", err)
		return
	}

	claims, err := v.VerifyToken(token)
	if err != nil {
		log.Printf("Controller command rejected: %v", err)
		return
	}

	result := sw.ApplyControllerCommand(claims.CommandByte(), 0)
	log.Printf("Controller command from %s applied: %s", claims.Subject, result)
	logger.Log("controller_command", map[string]interface{}{"subject": claims.Subject, "result": result.String()})
	events.Add("controller_command", map[string]interface{}{"subject": claims.Subject})
}

// demoSignedToken builds a sample HS256 controller token, standing in
// for the token a paired controller would actually send over the link.
func demoSignedToken() (string, error) {
	claims := jwt.MapClaims{
		"sub":     "demo-controller",
		"enabled": true,
		"mode":    "HIGH",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte("demo-link-secret"))
}
