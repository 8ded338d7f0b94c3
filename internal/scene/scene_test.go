package scene_test

import (
	"bytes"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/modviz/internal/modarith"
	"github.com/san-kum/modviz/internal/scene"
)

const ticks = 10

func advance(s *scene.Scene, n int) {
	for i := 0; i < n; i++ {
		s.AdvanceFrame()
	}
}

var _ = Describe("Scene", func() {
	var s *scene.Scene

	BeforeEach(func() {
		s = scene.New(scene.Options{
			Params:     scene.Params{Operand: 7, Modulus: 3, Generator: 1},
			Ticks:      ticks,
			MaxModulus: 360,
			MaxValue:   9999,
		})
	})

	Describe("parameters", func() {
		It("starts with the given parameters and no message", func() {
			Expect(s.Params()).To(Equal(scene.Params{Operand: 7, Modulus: 3, Generator: 1}))
			Expect(s.Message()).To(BeEmpty())
		})

		It("accepts values in range", func() {
			Expect(s.SetOperand(12)).To(BeTrue())
			Expect(s.SetModulus(5)).To(BeTrue())
			Expect(s.SetGenerator(0)).To(BeTrue())
			Expect(s.Params()).To(Equal(scene.Params{Operand: 12, Modulus: 5, Generator: 0}))
		})

		It("rejects a zero modulus and keeps the old value", func() {
			Expect(s.SetModulus(0)).To(BeFalse())
			Expect(s.Params().Modulus).To(Equal(3))
			Expect(s.Message()).To(ContainSubstring("modulus"))
		})

		It("rejects values above the limits", func() {
			Expect(s.SetModulus(361)).To(BeFalse())
			Expect(s.SetOperand(10000)).To(BeFalse())
			Expect(s.Params()).To(Equal(scene.Params{Operand: 7, Modulus: 3, Generator: 1}))
		})

		It("parses raw field text", func() {
			Expect(s.SetField(scene.FieldGenerator, "4")).To(BeTrue())
			Expect(s.Params().Generator).To(Equal(4))

			Expect(s.SetField(scene.FieldOperand, "seven")).To(BeFalse())
			Expect(s.Params().Operand).To(Equal(7))
			Expect(s.Message()).To(Equal("operand: 'seven' must be a 0+ number"))
		})

		It("clears the message after a valid edit", func() {
			s.SetField(scene.FieldModulus, "x")
			Expect(s.Message()).NotTo(BeEmpty())
			s.SetField(scene.FieldModulus, "4")
			Expect(s.Message()).To(BeEmpty())
		})

		It("rejects unknown fields", func() {
			Expect(s.SetField("radius", "3")).To(BeFalse())
			Expect(s.Message()).To(ContainSubstring("radius"))
		})
	})

	Describe("generating", func() {
		It("has no result before the first generate", func() {
			_, ok := s.Result()
			Expect(ok).To(BeFalse())
			Expect(s.CurrentProgress()).To(BeZero())
			Expect(s.Snapshot().Summary()).To(Equal("press Generate"))
		})

		It("computes a reduction and starts the animation", func() {
			Expect(s.OnGenerateMode(scene.ModeReduction)).To(Succeed())

			res, ok := s.Result()
			Expect(ok).To(BeTrue())
			Expect(res.Reduction.Remainder).To(Equal(1))

			st := s.Animation()
			Expect(st.Elapsed).To(Equal(0))
			Expect(st.Active).To(BeTrue())
		})

		It("computes a cycle", func() {
			s.SetGenerator(3)
			s.SetModulus(12)
			Expect(s.OnGenerateMode(scene.ModeCycle)).To(Succeed())

			res, _ := s.Result()
			Expect(res.Mode).To(Equal(scene.ModeCycle))
			Expect(res.Cycle.Residues).To(Equal([]int{0, 3, 6, 9, 0}))
			Expect(s.Mode()).To(Equal(scene.ModeCycle))
		})

		It("finishes after the configured number of frames", func() {
			Expect(s.OnGenerate()).To(Succeed())
			advance(s, ticks)

			Expect(s.Animation().Active).To(BeFalse())
			Expect(s.CurrentProgress()).To(Equal(1.0))

			advance(s, 3)
			Expect(s.CurrentProgress()).To(Equal(1.0))
		})

		It("restarts when generate is pressed mid-animation", func() {
			Expect(s.OnGenerate()).To(Succeed())
			advance(s, ticks/2)
			Expect(s.OnGenerate()).To(Succeed())
			Expect(s.Animation().Elapsed).To(Equal(0))
			Expect(s.Animation().Active).To(BeTrue())
		})

		It("ignores frames while idle", func() {
			advance(s, 5)
			Expect(s.Animation().Elapsed).To(Equal(0))
		})

		It("does not alias the stored cycle", func() {
			s.OnGenerateMode(scene.ModeCycle)
			res, _ := s.Result()
			res.Cycle.Residues[0] = 42

			again, _ := s.Result()
			Expect(again.Cycle.Residues[0]).To(Equal(0))
		})

		It("logs generate events", func() {
			var buf bytes.Buffer
			logged := scene.New(scene.Options{
				Params: scene.Params{Operand: 7, Modulus: 4},
				Logger: log.New(&buf, "", 0),
			})
			Expect(logged.OnGenerate()).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("7 mod 4 = 3"))
		})
	})

	Describe("rejected generate", func() {
		It("keeps parameters, result and animation unchanged", func() {
			Expect(s.OnGenerate()).To(Succeed())
			advance(s, 4)
			before := s.Snapshot()

			Expect(s.OnGenerateMode(scene.Mode(9))).To(MatchError(modarith.ErrInvalidInput))

			after := s.Snapshot()
			Expect(after.Params).To(Equal(before.Params))
			Expect(after.Result).To(Equal(before.Result))
			Expect(after.Progress).To(Equal(before.Progress))
			Expect(after.Message).NotTo(BeEmpty())
		})

		It("keeps the prior result when modulus 0 is entered", func() {
			Expect(s.OnGenerate()).To(Succeed())
			Expect(s.SetField(scene.FieldModulus, "0")).To(BeFalse())
			Expect(s.Message()).To(Equal("modulus must be at least 1"))

			res, ok := s.Result()
			Expect(ok).To(BeTrue())
			Expect(res.Reduction.Modulus).To(Equal(3))
			Expect(s.Params().Modulus).To(Equal(3))
		})
	})

	Describe("snapshots", func() {
		It("reveals reduction points progressively", func() {
			s.OnGenerate()

			snap := s.Snapshot()
			Expect(snap.Points).To(HaveLen(9))
			Expect(snap.Rings).To(HaveLen(3))
			Expect(snap.VisiblePoints).To(BeZero())
			Expect(snap.Arrows).To(BeEmpty())

			advance(s, ticks/2)
			snap = s.Snapshot()
			Expect(snap.VisiblePoints).To(Equal(5))
			Expect(snap.Rings[0].Visible).To(BeTrue())
			Expect(snap.Rings[1].Visible).To(BeTrue())
			Expect(snap.Rings[2].Visible).To(BeFalse())
			Expect(snap.Highlight).To(Equal([]int{4}))
			Expect(snap.Animating).To(BeTrue())
		})

		It("draws the reduction arrow when finished", func() {
			s.OnGenerate()
			advance(s, ticks)

			snap := s.Snapshot()
			Expect(snap.Done).To(BeTrue())
			Expect(snap.Arrows).To(HaveLen(1))
			Expect(snap.Arrows[0].Start.Label).To(Equal(7))
			Expect(snap.Arrows[0].End.Label).To(Equal(1))
			Expect(snap.IsHighlighted(7)).To(BeTrue())
			Expect(snap.IsHighlighted(1)).To(BeTrue())
			Expect(snap.Summary()).To(Equal("7 mod 3 = 1"))
		})

		It("reveals cycle arrows and the orbit", func() {
			s.SetModulus(12)
			s.SetGenerator(3)
			s.OnGenerateMode(scene.ModeCycle)

			snap := s.Snapshot()
			Expect(snap.Points).To(HaveLen(12))
			Expect(snap.VisiblePoints).To(Equal(12))
			Expect(snap.Arrows).To(BeEmpty())
			Expect(snap.Highlight).To(Equal([]int{0}))

			advance(s, ticks)
			snap = s.Snapshot()
			Expect(snap.Arrows).To(HaveLen(12))
			Expect(snap.Orbit).To(HaveLen(4))
			Expect(snap.Highlight).To(Equal([]int{0, 3, 6, 9}))
		})

		It("lays out from the generated parameters, not pending edits", func() {
			s.OnGenerate()
			s.SetModulus(10)

			snap := s.Snapshot()
			Expect(snap.Params.Modulus).To(Equal(10))
			Expect(snap.Result.Params.Modulus).To(Equal(3))
			Expect(snap.Points).To(HaveLen(9))
		})
	})

	Describe("modes", func() {
		It("parses mode names", func() {
			m, err := scene.ParseMode("cycle")
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(Equal(scene.ModeCycle))
			Expect(m.String()).To(Equal("cycle"))

			_, err = scene.ParseMode("spiral")
			Expect(err).To(MatchError(modarith.ErrInvalidInput))
		})

		It("rejects unknown modes in SetMode", func() {
			s.SetMode(scene.Mode(5))
			Expect(s.Mode()).To(Equal(scene.ModeReduction))
			Expect(s.Message()).NotTo(BeEmpty())
		})
	})
})
