package dynamics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/evoterm/gamescape/internal/dynamics"
)

var _ = Describe("Classify", func() {
	DescribeTable("maps payoff matrices to game types",
		func(m dynamics.PayoffMatrix, want dynamics.Classification) {
			got, err := dynamics.ClassifyMatrix(m)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("prisoners dilemma is dominant-defect",
			dynamics.PayoffMatrix{A: 3, B: 0, C: 5, D: 1}, dynamics.DominantDefect),
		Entry("harmony is dominant-cooperate",
			dynamics.PayoffMatrix{A: 4, B: 3, C: 3, D: 2}, dynamics.DominantCooperate),
		Entry("hawk dove is coexistence",
			dynamics.PayoffMatrix{A: 0, B: 3, C: 5, D: 1}, dynamics.Coexistence),
		Entry("stag hunt is bistable",
			dynamics.PayoffMatrix{A: 1, B: 0, C: 0, D: 2}, dynamics.Bistable),
		Entry("degenerate flat game degrades to coordination",
			dynamics.PayoffMatrix{A: 1, B: 1, C: 1, D: 1}, dynamics.Coordination),
		Entry("weakly dominant cooperation (a==c) is dominant-cooperate",
			dynamics.PayoffMatrix{A: 1, B: 2, C: 1, D: 0}, dynamics.DominantCooperate),
		Entry("weakly dominant defection (b==d) is dominant-defect",
			dynamics.PayoffMatrix{A: 0, B: 1, C: 2, D: 1}, dynamics.DominantDefect),
	)

	It("depends only on the stability pattern, not the payoff scale", func() {
		base := dynamics.PayoffMatrix{A: 3, B: 0, C: 5, D: 1}
		scaled := dynamics.PayoffMatrix{A: 30, B: 0, C: 50, D: 10}
		shifted := dynamics.PayoffMatrix{A: 103, B: 100, C: 105, D: 101}

		want, err := dynamics.ClassifyMatrix(base)
		Expect(err).NotTo(HaveOccurred())
		for _, m := range []dynamics.PayoffMatrix{scaled, shifted} {
			got, err := dynamics.ClassifyMatrix(m)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		}
	})

	It("rejects sequences without both boundary points", func() {
		_, err := dynamics.Classify([]dynamics.FixedPoint{
			{X: 0, Stable: true, Label: dynamics.LabelAllD},
		})
		Expect(err).To(MatchError(dynamics.ErrMissingBoundary))
	})

	It("fails loudly on patterns the table does not cover", func() {
		// Interior stable but one boundary stable too: impossible
		// under a correct replicator flow.
		_, err := dynamics.Classify([]dynamics.FixedPoint{
			{X: 0, Stable: true, Label: dynamics.LabelAllD},
			{X: 0.5, Stable: true, Label: dynamics.LabelInterior},
			{X: 1, Stable: false, Label: dynamics.LabelAllC},
		})
		Expect(err).To(MatchError(dynamics.ErrInconsistentPattern))
	})
})
