package insts

import "github.com/sarchlab/mipsdecode/bits"

// ImmFormat selects which field is an instruction's immediate and how it
// widens.
type ImmFormat uint8

// Immediate formats.
const (
	ImmNone       ImmFormat = iota // no immediate
	ImmShift                       // shamt, zero-extended
	ImmJump                        // 26-bit jump target, zero-extended
	ImmLogical                     // imm, zero-extended (andi, ori, xori)
	ImmArithmetic                  // imm, sign-extended (addi, slti, loads, branches)
)

// Integer is the set of widths an immediate can be resolved to.
type Integer interface {
	~int32 | ~uint32 | ~int64 | ~uint64
}

// ParseImmFormat maps an instruction table format character to a format.
// 'N', 'S', 'J' and 'L' select none, shift, jump and logical; any other
// character means a sign-extended arithmetic immediate.
func ParseImmFormat(c byte) ImmFormat {
	switch c {
	case 'N':
		return ImmNone
	case 'S':
		return ImmShift
	case 'J':
		return ImmJump
	case 'L':
		return ImmLogical
	default:
		return ImmArithmetic
	}
}

// SignExtends reports whether the format sign-extends its immediate.
// Only the four unsigned formats zero-extend; everything else is
// treated as arithmetic.
func (f ImmFormat) SignExtends() bool {
	switch f {
	case ImmNone, ImmShift, ImmJump, ImmLogical:
		return false
	default:
		return true
	}
}

// Char returns the instruction table character of the format.
func (f ImmFormat) Char() byte {
	switch f {
	case ImmNone:
		return 'N'
	case ImmShift:
		return 'S'
	case ImmJump:
		return 'J'
	case ImmLogical:
		return 'L'
	default:
		return 'A'
	}
}

func (f ImmFormat) String() string {
	switch f {
	case ImmNone:
		return "none"
	case ImmShift:
		return "shift"
	case ImmJump:
		return "jump"
	case ImmLogical:
		return "logical"
	default:
		return "arithmetic"
	}
}

// Immediate widens value to T according to format f. Unsigned formats
// keep value as is; arithmetic immediates sign-extend from bit 15.
func Immediate[T Integer](f ImmFormat, value uint32) T {
	if !f.SignExtends() {
		return T(value)
	}
	return T(bits.SignExtend(value, immWidth))
}
