package main

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

// writeMIPSELF writes a little-endian MIPS32 executable with one code
// segment at 0x400000.
func writeMIPSELF(path string, words ...uint32) {
	code := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(code[4*i:], w)
	}

	header := make([]byte, 52)
	copy(header[0:4], []byte{0x7f, 'E', 'L', 'F'})
	header[4] = 1 // 32-bit
	header[5] = 1 // little endian
	header[6] = 1
	binary.LittleEndian.PutUint16(header[16:18], 2) // executable
	binary.LittleEndian.PutUint16(header[18:20], 8) // MIPS
	binary.LittleEndian.PutUint32(header[20:24], 1)
	binary.LittleEndian.PutUint32(header[24:28], 0x400000)
	binary.LittleEndian.PutUint32(header[28:32], 52)
	binary.LittleEndian.PutUint16(header[40:42], 52)
	binary.LittleEndian.PutUint16(header[42:44], 32)
	binary.LittleEndian.PutUint16(header[44:46], 1)
	binary.LittleEndian.PutUint16(header[46:48], 40)

	ph := make([]byte, 32)
	binary.LittleEndian.PutUint32(ph[0:4], 1)   // PT_LOAD
	binary.LittleEndian.PutUint32(ph[4:8], 84)  // offset
	binary.LittleEndian.PutUint32(ph[8:12], 0x400000)
	binary.LittleEndian.PutUint32(ph[12:16], 0x400000)
	binary.LittleEndian.PutUint32(ph[16:20], uint32(len(code)))
	binary.LittleEndian.PutUint32(ph[20:24], uint32(len(code)))
	binary.LittleEndian.PutUint32(ph[24:28], 0x5) // PF_R | PF_X
	binary.LittleEndian.PutUint32(ph[28:32], 0x1000)

	image := append(append(header, ph...), code...)
	Expect(os.WriteFile(path, image, 0644)).To(Succeed())
}

var _ = Describe("mipsdecode", func() {
	var (
		out *bytes.Buffer
		log *logrus.Logger
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		log = logrus.New()
		log.SetOutput(io.Discard)
	})

	run := func(args ...string) error {
		return newApp(out, log).Run(append([]string{"mipsdecode"}, args...))
	}

	Describe("parseWord", func() {
		It("should accept hex, binary, octal and decimal", func() {
			for in, want := range map[string]uint32{
				"0x00641820":    0x00641820,
				"6556192":       0x00641820,
				"0b1111":        0xF,
				"0o17":          0xF,
				"0xFFFF_FFFF":   0xFFFFFFFF,
				"  0x2128FFFF ": 0x2128FFFF,
			} {
				w, err := parseWord(in)
				Expect(err).NotTo(HaveOccurred(), "input %q", in)
				Expect(w).To(Equal(want), "input %q", in)
			}
		})

		It("should reject overflowing and malformed words", func() {
			for _, in := range []string{"0x100000000", "add", "", "-1"} {
				_, err := parseWord(in)
				Expect(err).To(HaveOccurred(), "input %q", in)
			}
		})
	})

	Describe("decode", func() {
		It("should print fields and resolved operands", func() {
			Expect(run("decode", "0x00641820")).To(Succeed())

			Expect(out.String()).To(Equal(
				"0x00641820  add\n" +
					"  opcode=0x00 rs=3 rt=4 rd=3 shamt=0 funct=0x20 imm=0x1820 jump=0x0641820\n" +
					"  RD=$v1 RS=$v1 RT=$a0 imm(none)=0x0/0x00000000\n"))
		})

		It("should zero-extend logical immediates", func() {
			Expect(run("decode", "0x35288000")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("RT=$t0 RS=$t1 imm(logical)=0x8000/0x00008000"))
		})

		It("should sign-extend arithmetic immediates at 64 bits", func() {
			Expect(run("decode", "--width", "64", "0x2128FFFF")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("imm(arithmetic)=0xFFFF/0xFFFFFFFFFFFFFFFF"))
		})

		It("should use a forced profile", func() {
			Expect(run("decode", "--profile", "ori", "0x2128FFFF")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("0x2128FFFF  ori"))
			Expect(out.String()).To(ContainSubstring("imm(logical)=0xFFFF/0x0000FFFF"))
		})

		It("should print only fields for an unknown opcode", func() {
			Expect(run("decode", "0xFC000000")).To(Succeed())
			Expect(out.String()).To(Equal(
				"0xFC000000\n" +
					"  opcode=0x3F rs=0 rt=0 rd=0 shamt=0 funct=0x00 imm=0x0000 jump=0x0000000\n"))
		})

		It("should dump the decoder", func() {
			Expect(run("decode", "--dump", "0x00641820")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("insts.Decoder"))
		})

		It("should load a profile table", func() {
			path := filepath.Join(GinkgoT().TempDir(), "profiles.json")
			Expect(os.WriteFile(path, []byte(`{"profiles": [
				{"name": "addi.custom", "opcode": 8, "format": "L", "roles": ["RT"]}
			]}`), 0644)).To(Succeed())

			Expect(run("decode", "--profiles", path, "0x2128FFFF")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("addi.custom"))
			Expect(out.String()).To(ContainSubstring("RT=$t0 imm(logical)=0xFFFF/0x0000FFFF"))
		})

		It("should reject bad arguments", func() {
			Expect(run("decode")).NotTo(Succeed())
			Expect(run("decode", "nope")).NotTo(Succeed())
			Expect(run("decode", "--width", "16", "0")).NotTo(Succeed())
			Expect(run("decode", "--profile", "missing", "0")).NotTo(Succeed())
		})
	})

	Describe("scan", func() {
		It("should decode every code word with its address", func() {
			path := filepath.Join(GinkgoT().TempDir(), "prog.elf")
			writeMIPSELF(path, 0x00641820, 0x03E00008)

			Expect(run("-v", "scan", path)).To(Succeed())

			Expect(out.String()).To(ContainSubstring("0x00641820 @0x00400000  add"))
			Expect(out.String()).To(ContainSubstring("0x03E00008 @0x00400004  jr"))
			Expect(out.String()).To(ContainSubstring("RS=$ra"))
		})

		It("should fail for a missing program", func() {
			Expect(run("scan", filepath.Join(GinkgoT().TempDir(), "missing.elf"))).NotTo(Succeed())
		})

		It("should require exactly one program", func() {
			Expect(run("scan")).NotTo(Succeed())
		})
	})
})
