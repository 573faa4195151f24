package insts_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mipsdecode/insts"
)

var _ = Describe("Role", func() {
	It("should mark exactly nine roles as explicit", func() {
		var explicit []insts.Role
		for _, r := range insts.Roles() {
			if r.IsExplicit() {
				explicit = append(explicit, r)
			}
		}

		Expect(explicit).To(ConsistOf(
			insts.RoleRS, insts.RoleRT, insts.RoleRD, insts.RoleCP0RD,
			insts.RoleFR, insts.RoleFT, insts.RoleFS, insts.RoleFD, insts.RoleFCSR,
		))
	})

	It("should list sixteen roles", func() {
		Expect(insts.Roles()).To(HaveLen(16))
	})

	It("should parse its own names", func() {
		for _, r := range insts.Roles() {
			parsed, err := insts.ParseRole(r.String())
			Expect(err).ToNot(HaveOccurred())
			Expect(parsed).To(Equal(r))
		}
	})

	It("should parse names in any case", func() {
		r, err := insts.ParseRole("cp0_rd")
		Expect(err).ToNot(HaveOccurred())
		Expect(r).To(Equal(insts.RoleCP0RD))

		r, err = insts.ParseRole("hi_lo")
		Expect(err).ToNot(HaveOccurred())
		Expect(r).To(Equal(insts.RoleHILO))
	})

	It("should reject unknown names", func() {
		_, err := insts.ParseRole("R9")
		Expect(errors.Is(err, insts.ErrUnknownRole)).To(BeTrue())
	})

	It("should name invalid roles by number", func() {
		Expect(insts.Role(77).String()).To(Equal("Role(77)"))
		Expect(insts.Role(77).Valid()).To(BeFalse())
		Expect(insts.Role(77).IsExplicit()).To(BeFalse())
	})
})
