package sim_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/oscillab/internal/emitters"
	"github.com/san-kum/oscillab/internal/harmonic"
	"github.com/san-kum/oscillab/internal/sim"
)

var _ = Describe("Driver", func() {
	It("produces five series aligned with the grid", func() {
		result, err := sim.Simulate(0.001, 1e-5)
		Expect(err).NotTo(HaveOccurred())

		wantLen := int(math.Ceil(0.001 / 1e-5))
		Expect(result.Grid).To(HaveLen(wantLen))
		Expect(result.Series).To(HaveLen(5))
		for _, sr := range result.Series {
			Expect(sr.Amplitudes).To(HaveLen(wantLen), sr.Label)
			Expect(sr.Amplitudes.IsValid()).To(BeTrue(), sr.Label)
		}
	})

	It("keeps the fixed emitter order", func() {
		result, err := sim.Simulate(0.001, 1e-4)
		Expect(err).NotTo(HaveOccurred())

		labels := make([]string, len(result.Series))
		for i, sr := range result.Series {
			labels[i] = sr.Label
		}
		Expect(labels).To(Equal([]string{
			"Lux-Therma", "Plasma-Field", "Magna-Pulse", "Sonic Array", "Aether-Wave",
		}))
	})

	It("rejects a non-positive duration", func() {
		result, err := sim.Simulate(0, 1e-6)
		Expect(err).To(MatchError(harmonic.ErrInvalidParameter))
		Expect(result).To(BeNil())
	})

	It("rejects a non-positive resolution", func() {
		result, err := sim.Simulate(0.01, 0)
		Expect(err).To(MatchError(harmonic.ErrInvalidParameter))
		Expect(result).To(BeNil())
	})

	It("fails atomically when one emitter is invalid", func() {
		plasma := emitters.NewPlasmaField()
		plasma.PlasmaTemperature = 0

		d := sim.NewWithWaveforms(emitters.NewLuxTherma(), plasma, emitters.NewMagnaPulse())
		result, err := d.Run(context.Background(), sim.Config{Duration: 0.001, Resolution: 1e-5})

		Expect(err).To(MatchError(harmonic.ErrInvalidParameter))
		Expect(result).To(BeNil())
	})

	It("yields the documented two-sample example", func() {
		result, err := sim.Simulate(0.001, 0.0005)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Grid).To(HaveLen(2))
		Expect(result.Grid[0]).To(Equal(0.0))
		Expect(result.Grid[1]).To(BeNumerically("~", 0.0005, 1e-15))

		for _, sr := range result.Series {
			Expect(sr.Amplitudes).To(HaveLen(2), sr.Label)
		}

		aether := result.Series[4]
		Expect(aether.Label).To(Equal("Aether-Wave"))
		for _, v := range aether.Amplitudes {
			Expect(math.Abs(v)).To(BeNumerically("<=", 1e-6))
		}
	})

	It("evaluates identically in serial and parallel", func() {
		serial, err := sim.New().Run(context.Background(), sim.Config{Duration: 0.001, Resolution: 1e-5})
		Expect(err).NotTo(HaveOccurred())

		parallel, err := sim.New().Run(context.Background(), sim.Config{Duration: 0.001, Resolution: 1e-5, Parallel: true})
		Expect(err).NotTo(HaveOccurred())

		Expect(parallel.Series).To(Equal(serial.Series))
	})

	It("is deterministic across runs", func() {
		a, err := sim.Simulate(0.002, 1e-5)
		Expect(err).NotTo(HaveOccurred())
		b, err := sim.Simulate(0.002, 1e-5)
		Expect(err).NotTo(HaveOccurred())

		Expect(b.Series).To(Equal(a.Series))
	})

	It("attaches per-series metrics when configured", func() {
		d := sim.New()
		for _, m := range sim.DefaultMetrics() {
			d.AddMetric(m)
		}

		result, err := d.Run(context.Background(), sim.Config{Duration: 0.001, Resolution: 1e-5})
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Metrics).To(HaveLen(5))
		sonic := result.Metrics["Sonic Array"]
		Expect(sonic).To(HaveKey("peak"))
		Expect(sonic).To(HaveKey("rms"))
		Expect(sonic).To(HaveKey("energy"))
		Expect(sonic["peak"]).To(BeNumerically(">", 0))
		Expect(sonic["peak"]).To(BeNumerically("<=", emitters.SonicPressureGain))
	})

	It("stops between emitters when the context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := sim.New().Run(ctx, sim.Config{Duration: 0.001, Resolution: 1e-5})
		Expect(err).To(MatchError(context.Canceled))
	})
})
