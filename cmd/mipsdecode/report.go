package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/sarchlab/mipsdecode/insts"
)

// parseWord accepts 0x hex, 0b binary, 0o octal or decimal words.
func parseWord(s string) (uint32, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid instruction word %q: %w", s, err)
	}
	return uint32(v), nil
}

// reporter prints decoded words.
type reporter struct {
	out      io.Writer
	profiles *ProfileConfig
	forced   *Profile
	width    int
	dump     bool
}

// report prints one word. addr is printed when hasAddr is set. It reports
// whether a profile applied to the word.
func (r *reporter) report(word uint32, addr uint32, hasAddr bool) (bool, error) {
	d := insts.Decode(word)

	var line strings.Builder
	fmt.Fprintf(&line, "0x%08X", word)
	if hasAddr {
		fmt.Fprintf(&line, " @0x%08X", addr)
	}

	p := r.forced
	if p == nil && r.profiles != nil {
		p, _ = r.profiles.Match(d)
	}
	if p != nil {
		fmt.Fprintf(&line, "  %s", p.Name)
	}
	fmt.Fprintln(r.out, line.String())

	fmt.Fprintf(r.out, "  opcode=0x%02X rs=%d rt=%d rd=%d shamt=%d funct=0x%02X imm=0x%04X jump=0x%07X\n",
		d.Opcode(), d.RS(), d.RT(), d.RD(), d.Shamt(), d.Funct(), d.Imm(), d.Jump())

	if p != nil {
		ops, err := p.Resolve(d)
		if err != nil {
			return true, err
		}

		parts := make([]string, 0, len(ops)+1)
		for _, op := range ops {
			parts = append(parts, fmt.Sprintf("%v=%v", op.Role, op.Register))
		}
		parts = append(parts, r.immediate(d, p.ImmFormat()))
		fmt.Fprintf(r.out, "  %s\n", strings.Join(parts, " "))
	}

	if r.dump {
		spew.Fdump(r.out, d)
	}

	return p != nil, nil
}

func (r *reporter) immediate(d insts.Decoder, f insts.ImmFormat) string {
	raw := d.ImmediateValue(f)
	if r.width == 64 {
		return fmt.Sprintf("imm(%v)=0x%X/0x%016X", f, raw, d.Imm64(f))
	}
	return fmt.Sprintf("imm(%v)=0x%X/0x%08X", f, raw, d.Imm32(f))
}
