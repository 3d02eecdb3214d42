package gel_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gelsim/internal/gel"
)

var _ = Describe("Controller", func() {
	var (
		reg  *gel.Registry
		ctrl *gel.Controller
	)

	ladder := []gel.LaneDef{{Lane: 0, Sizes: []int{100, 300, 1000}}}

	BeforeEach(func() {
		reg = gel.NewRegistry(15)
		ctrl = gel.NewController(reg, gel.DefaultParams())
	})

	Describe("Start", func() {
		It("rejects a start with no samples loaded", func() {
			Expect(ctrl.Start()).To(MatchError(gel.ErrNoSamples))
			Expect(ctrl.Phase()).To(Equal(gel.PhaseIdle))
			Expect(ctrl.Elapsed()).To(BeZero())
		})

		It("runs once lanes are loaded", func() {
			ctrl.LoadLanes(ladder)
			Expect(ctrl.Start()).To(Succeed())
			Expect(ctrl.Phase()).To(Equal(gel.PhaseRunning))
		})

		It("resumes from paused without touching elapsed time", func() {
			ctrl.LoadLanes(ladder)
			Expect(ctrl.Start()).To(Succeed())
			ctrl.TickSecond()
			ctrl.TickSecond()
			ctrl.Pause()
			Expect(ctrl.Start()).To(Succeed())
			Expect(ctrl.Elapsed()).To(Equal(2))
		})
	})

	Describe("LoadLanes", func() {
		It("is a no-op while running", func() {
			ctrl.LoadLanes(ladder)
			Expect(ctrl.Start()).To(Succeed())
			ctrl.Advance(1.0)
			before := ctrl.Fragments()[0].Position

			ctrl.LoadLanes([]gel.LaneDef{{Lane: 1, Sizes: []int{42}}})
			Expect(reg.Count()).To(Equal(3))
			Expect(ctrl.Fragments()[0].Position).To(Equal(before))
		})

		It("replaces samples while idle or paused", func() {
			ctrl.LoadLanes(ladder)
			ctrl.LoadLanes([]gel.LaneDef{{Lane: 1, Sizes: []int{42}}})
			Expect(reg.Count()).To(Equal(1))
		})
	})

	Describe("Pause", func() {
		It("freezes motion and time", func() {
			ctrl.LoadLanes(ladder)
			Expect(ctrl.Start()).To(Succeed())
			ctrl.Pause()

			before := ctrl.Fragments()[0].Position
			ctrl.Advance(5.0)
			ctrl.TickSecond()

			Expect(ctrl.Fragments()[0].Position).To(Equal(before))
			Expect(ctrl.Elapsed()).To(BeZero())
			Expect(ctrl.Phase()).To(Equal(gel.PhasePaused))
		})

		It("does nothing from idle", func() {
			ctrl.Pause()
			Expect(ctrl.Phase()).To(Equal(gel.PhaseIdle))
		})
	})

	Describe("Reset", func() {
		for _, setup := range []struct {
			name string
			from func()
		}{
			{"idle", func() {}},
			{"running", func() {
				ctrl.LoadLanes(ladder)
				Expect(ctrl.Start()).To(Succeed())
				ctrl.TickSecond()
			}},
			{"paused", func() {
				ctrl.LoadLanes(ladder)
				Expect(ctrl.Start()).To(Succeed())
				ctrl.TickSecond()
				ctrl.Pause()
			}},
		} {
			setup := setup
			It("returns to a clean idle state from "+setup.name, func() {
				setup.from()
				ctrl.Reset()

				Expect(ctrl.Phase()).To(Equal(gel.PhaseIdle))
				Expect(ctrl.Elapsed()).To(BeZero())
				Expect(ctrl.Loaded()).To(BeFalse())
				Expect(ctrl.Fragments()).To(BeEmpty())
			})
		}
	})

	Describe("Advance", func() {
		It("moves fragments only while running", func() {
			ctrl.LoadLanes(ladder)
			ctrl.Advance(1.0)
			Expect(ctrl.Fragments()[0].Position).To(Equal(15.0))

			Expect(ctrl.Start()).To(Succeed())
			ctrl.Advance(1.0)
			Expect(ctrl.Fragments()[0].Position).To(BeNumerically(">", 15.0))
		})

		It("finishes the whole ladder at the travel limit", func() {
			ctrl.LoadLanes(ladder)
			Expect(ctrl.Start()).To(Succeed())
			for i := 0; i < 10000 && !ctrl.Done(); i++ {
				ctrl.Advance(0.5)
			}
			Expect(ctrl.Done()).To(BeTrue())
			for _, f := range ctrl.Fragments() {
				Expect(f.Position).To(Equal(ctrl.Params().TravelLimit))
			}
		})
	})

	Describe("SetVoltage", func() {
		It("clamps to the configured range", func() {
			ctrl.SetVoltage(10)
			Expect(ctrl.Voltage()).To(Equal(50))
			ctrl.SetVoltage(9000)
			Expect(ctrl.Voltage()).To(Equal(300))
			ctrl.SetVoltage(120)
			Expect(ctrl.Voltage()).To(Equal(120))
		})
	})

	Describe("Clock", func() {
		It("formats elapsed seconds as MM:SS", func() {
			ctrl.LoadLanes(ladder)
			Expect(ctrl.Start()).To(Succeed())
			for i := 0; i < 125; i++ {
				ctrl.TickSecond()
			}
			Expect(ctrl.Clock()).To(Equal("02:05"))
		})
	})
})
