package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mipsdecode/insts"
)

var _ = Describe("Field", func() {
	It("should describe the MIPS32 layout", func() {
		layout := map[insts.Field][3]uint32{
			insts.FieldOpcode: {6, 26, 0xFC000000},
			insts.FieldRS:     {5, 21, 0x03E00000},
			insts.FieldRT:     {5, 16, 0x001F0000},
			insts.FieldRD:     {5, 11, 0x0000F800},
			insts.FieldShamt:  {5, 6, 0x000007C0},
			insts.FieldFunct:  {6, 0, 0x0000003F},
			insts.FieldImm:    {16, 0, 0x0000FFFF},
			insts.FieldJump:   {26, 0, 0x03FFFFFF},
			insts.FieldBytes:  {32, 0, 0xFFFFFFFF},
		}

		for f, want := range layout {
			Expect(f.Width()).To(Equal(want[0]), "field %v", f)
			Expect(f.Offset()).To(Equal(want[1]), "field %v", f)
			Expect(f.Mask()).To(Equal(want[2]), "field %v", f)
		}
	})

	It("should alias COP1 fields onto integer fields", func() {
		Expect(insts.FieldFmt.Mask()).To(Equal(insts.FieldRS.Mask()))
		Expect(insts.FieldFT.Mask()).To(Equal(insts.FieldRT.Mask()))
		Expect(insts.FieldFS.Mask()).To(Equal(insts.FieldRD.Mask()))
		Expect(insts.FieldFD.Mask()).To(Equal(insts.FieldShamt.Mask()))
	})

	It("should tile the word with the R-format fields", func() {
		rFields := []insts.Field{
			insts.FieldOpcode, insts.FieldRS, insts.FieldRT,
			insts.FieldRD, insts.FieldShamt, insts.FieldFunct,
		}

		var union uint32
		for i, f := range rFields {
			for _, g := range rFields[i+1:] {
				Expect(f.Mask()&g.Mask()).To(BeZero(), "%v overlaps %v", f, g)
			}
			union |= f.Mask()
		}
		Expect(union).To(Equal(uint32(0xFFFFFFFF)))
	})

	It("should keep each mask consistent with its width and offset", func() {
		for _, f := range insts.Fields() {
			Expect(f.Mask() >> f.Offset()).To(Equal(uint32(1<<f.Width() - 1)), "field %v", f)
		}
	})

	It("should name fields", func() {
		Expect(insts.FieldShamt.String()).To(Equal("shamt"))
		Expect(insts.FieldFmt.String()).To(Equal("fmt"))
		Expect(insts.Field(99).String()).To(Equal("unknown"))
	})

	It("should read unknown fields as empty", func() {
		Expect(insts.Field(99).Mask()).To(BeZero())
		Expect(insts.Field(99).Extract(0xFFFFFFFF)).To(BeZero())
	})

	It("should insert and extract", func() {
		word := insts.FieldRT.Insert(0, 17)
		Expect(insts.FieldRT.Extract(word)).To(Equal(uint32(17)))
		Expect(insts.FieldFT.Extract(word)).To(Equal(uint32(17)))
	})
})
