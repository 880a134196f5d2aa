package orbit_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/escapetime/internal/orbit"
)

func record(p orbit.Params) (*orbit.Recorder, orbit.Outcome) {
	rec := orbit.NewRecorder()
	out := orbit.Iterate(p, rec)
	return rec, out
}

var _ = Describe("Iterate", func() {
	Context("with the compiled-in constant", func() {
		var (
			rec *orbit.Recorder
			out orbit.Outcome
		)

		BeforeEach(func() {
			rec, out = record(orbit.DefaultParams())
		})

		It("emits z_1 = c as step 0", func() {
			Expect(rec.Records).NotTo(BeEmpty())
			Expect(rec.Records[0]).To(Equal(orbit.Record{Step: 0, Re: 0.00390625, Im: 0.31640625}))
		})

		It("computes step 1 from the step 0 snapshot", func() {
			cre, cim := 0.00390625, 0.31640625
			zr, zi := cre, cim
			Expect(rec.Records[1].Re).To(Equal(zr*zr - zi*zi + cre))
			Expect(rec.Records[1].Im).To(Equal(2*zi*zr + cim))
		})

		It("numbers records 0..k without gaps", func() {
			for i, r := range rec.Records {
				Expect(r.Step).To(Equal(i))
			}
			Expect(out.Steps).To(Equal(len(rec.Records)))
		})

		It("is deterministic", func() {
			again, out2 := record(orbit.DefaultParams())
			Expect(again.Records).To(Equal(rec.Records))
			Expect(out2).To(Equal(out))
		})
	})

	It("emits nothing when max_iter is 0", func() {
		p := orbit.DefaultParams()
		p.MaxIter = 0
		rec, out := record(p)
		Expect(rec.Records).To(BeEmpty())
		Expect(rec.Escaped()).To(BeFalse())
		Expect(out.Steps).To(BeZero())
		Expect(out.EscapeStep).To(Equal(-1))
	})

	It("keeps the origin fixed when c is 0", func() {
		rec, out := record(orbit.Params{MaxIter: 50, Radius: 2})
		Expect(rec.Records).To(HaveLen(50))
		for _, r := range rec.Records {
			Expect(r.Re).To(BeZero())
			Expect(r.Im).To(BeZero())
		}
		Expect(out.Escaped).To(BeFalse())
		Expect(rec.Escaped()).To(BeFalse())
	})

	It("diverges at step 0 when the radius is 0", func() {
		rec, out := record(orbit.Params{CRe: 0.5, CIm: 0, MaxIter: 100, Radius: 0})
		Expect(rec.Records).To(HaveLen(1))
		Expect(out.Escaped).To(BeTrue())
		Expect(out.EscapeStep).To(Equal(0))
		Expect(rec.EscapeStep).To(Equal(0))
	})

	It("treats |z|^2 == radius^2 as divergence", func() {
		// z_1 = 2 exactly
		rec, out := record(orbit.Params{CRe: 2, MaxIter: 10, Radius: 2})
		Expect(rec.Records).To(HaveLen(1))
		Expect(out.EscapeStep).To(Equal(0))
	})

	It("uses the pre-update real part for the imaginary update", func() {
		rec, out := record(orbit.Params{CRe: 1, CIm: 0.5, MaxIter: 10, Radius: 2})
		Expect(rec.Records).To(HaveLen(2))
		Expect(rec.Records[1].Re).To(Equal(1.75))
		Expect(rec.Records[1].Im).To(Equal(1.5))
		Expect(out.EscapeStep).To(Equal(1))
	})

	It("stops at the first escaping record", func() {
		rec, out := record(orbit.Params{CRe: 1, CIm: 1, MaxIter: 100, Radius: 2})
		Expect(rec.Records).To(HaveLen(2))
		Expect(rec.Records[1]).To(Equal(orbit.Record{Step: 1, Re: 1, Im: 3}))
		Expect(out.Last).To(Equal(rec.Records[1]))
		Expect(rec.EscapeStep).To(Equal(rec.Records[len(rec.Records)-1].Step))

		for _, r := range rec.Records[:len(rec.Records)-1] {
			Expect(r.Mag2()).To(BeNumerically("<", 4))
		}
	})

	It("runs the whole budget inside the period-2 cycle", func() {
		rec, out := record(orbit.Params{CRe: -1, MaxIter: 7, Radius: 2})
		Expect(rec.Records).To(HaveLen(7))
		Expect(out.Escaped).To(BeFalse())
		Expect(rec.Records[0].Re).To(Equal(-1.0))
		Expect(rec.Records[1].Re).To(Equal(0.0))
		Expect(rec.Records[2].Re).To(Equal(-1.0))
	})

	It("propagates NaN instead of failing", func() {
		rec, out := record(orbit.Params{CRe: math.NaN(), MaxIter: 3, Radius: 2})
		Expect(rec.Records).To(HaveLen(3))
		for _, r := range rec.Records {
			Expect(math.IsNaN(r.Re)).To(BeTrue())
		}
		Expect(out.Escaped).To(BeFalse())
	})
})

var _ = Describe("FormatHex", func() {
	It("round-trips every emitted component", func() {
		rec, _ := record(orbit.DefaultParams())
		for _, r := range rec.Records {
			re, err := orbit.ParseHex(r.HexRe())
			Expect(err).NotTo(HaveOccurred())
			Expect(re).To(Equal(r.Re))

			im, err := orbit.ParseHex(r.HexIm())
			Expect(err).NotTo(HaveOccurred())
			Expect(im).To(Equal(r.Im))
		}
	})

	DescribeTable("exact encodings",
		func(v float64, want string) {
			Expect(orbit.FormatHex(v)).To(Equal(want))
		},
		Entry("one", 1.0, "0x1p+00"),
		Entry("2^-8", 0.00390625, "0x1p-08"),
		Entry("five halves", 2.5, "0x1.4p+01"),
		Entry("negative", -2.5, "-0x1.4p+01"),
		Entry("+inf", math.Inf(1), "inf"),
		Entry("-inf", math.Inf(-1), "-inf"),
		Entry("nan", math.NaN(), "nan"),
	)

	It("parses non-finite encodings", func() {
		v, err := orbit.ParseHex("-inf")
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsInf(v, -1)).To(BeTrue())

		v, err = orbit.ParseHex("nan")
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsNaN(v)).To(BeTrue())
	})
})
