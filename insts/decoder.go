package insts

import (
	"errors"
	"fmt"

	"github.com/sarchlab/mipsdecode/bits"
)

// ErrUnknownRole is returned when a register role outside the defined set
// is resolved. It points at a broken instruction table, not at bad input.
var ErrUnknownRole = errors.New("unknown register role")

// Decoder holds the fields of one MIPS instruction word.
// It is an immutable value; copies are independent.
type Decoder struct {
	funct  uint32
	shamt  uint32
	rd     uint32
	rt     uint32
	rs     uint32
	opcode uint32
	imm    uint32
	jump   uint32
	bytes  uint32
	fd     uint32
	fs     uint32
	ft     uint32
	fmt    uint32
}

// Decode splits a 32-bit instruction word into its fields.
// Every word decodes; whether the opcode/funct pair names a real
// instruction is up to the instruction table.
func Decode(word uint32) Decoder {
	return Decoder{
		funct:  bits.Extract(word, maskFunct),
		shamt:  bits.Extract(word, maskShamt),
		rd:     bits.Extract(word, maskRD),
		rt:     bits.Extract(word, maskRT),
		rs:     bits.Extract(word, maskRS),
		opcode: bits.Extract(word, maskOpcode),
		imm:    bits.Extract(word, maskImm),
		jump:   bits.Extract(word, maskJump),
		bytes:  bits.Extract(word, maskBytes),
		fd:     bits.Extract(word, maskFD),
		fs:     bits.Extract(word, maskFS),
		ft:     bits.Extract(word, maskFT),
		fmt:    bits.Extract(word, maskFmt),
	}
}

// Opcode returns bits [31:26].
func (d Decoder) Opcode() uint32 { return d.opcode }

// RS returns bits [25:21].
func (d Decoder) RS() uint32 { return d.rs }

// RT returns bits [20:16].
func (d Decoder) RT() uint32 { return d.rt }

// RD returns bits [15:11].
func (d Decoder) RD() uint32 { return d.rd }

// Shamt returns bits [10:6].
func (d Decoder) Shamt() uint32 { return d.shamt }

// Funct returns bits [5:0].
func (d Decoder) Funct() uint32 { return d.funct }

// Imm returns bits [15:0], not extended.
func (d Decoder) Imm() uint32 { return d.imm }

// Jump returns the 26-bit jump target, bits [25:0].
func (d Decoder) Jump() uint32 { return d.jump }

// Bytes returns the whole instruction word.
func (d Decoder) Bytes() uint32 { return d.bytes }

// Fmt returns the COP1 format field (same bits as rs).
func (d Decoder) Fmt() uint32 { return d.fmt }

// FT returns the COP1 ft field (same bits as rt).
func (d Decoder) FT() uint32 { return d.ft }

// FS returns the COP1 fs field (same bits as rd).
func (d Decoder) FS() uint32 { return d.fs }

// FD returns the COP1 fd field (same bits as shamt).
func (d Decoder) FD() uint32 { return d.fd }

// Field returns the value of f. Unknown fields read as 0.
func (d Decoder) Field(f Field) uint32 {
	switch f {
	case FieldOpcode:
		return d.opcode
	case FieldRS:
		return d.rs
	case FieldRT:
		return d.rt
	case FieldRD:
		return d.rd
	case FieldShamt:
		return d.shamt
	case FieldFunct:
		return d.funct
	case FieldImm:
		return d.imm
	case FieldJump:
		return d.jump
	case FieldBytes:
		return d.bytes
	case FieldFmt:
		return d.fmt
	case FieldFT:
		return d.ft
	case FieldFS:
		return d.fs
	case FieldFD:
		return d.fd
	default:
		return 0
	}
}

// ImmediateValue returns the raw, unextended field that format f treats
// as the immediate: nothing for ImmNone, shamt for ImmShift, the jump
// target for ImmJump and the 16-bit imm otherwise.
func (d Decoder) ImmediateValue(f ImmFormat) uint32 {
	switch f {
	case ImmNone:
		return 0
	case ImmShift:
		return d.shamt
	case ImmJump:
		return d.jump
	default:
		return d.imm
	}
}

// Imm32 returns the immediate of format f extended to 32 bits.
func (d Decoder) Imm32(f ImmFormat) uint32 {
	return Immediate[uint32](f, d.ImmediateValue(f))
}

// Imm64 returns the immediate of format f extended to 64 bits.
func (d Decoder) Imm64(f ImmFormat) uint64 {
	return Immediate[uint64](f, d.ImmediateValue(f))
}

// Register resolves role against the fields of the instruction.
func (d Decoder) Register(role Role) (Register, error) {
	switch role {
	case RoleZERO:
		return Zero(), nil
	case RoleHI:
		return HI(), nil
	case RoleLO, RoleHILO:
		return LO(), nil
	case RoleRA:
		return ReturnAddress(), nil
	case RoleRS:
		return CPURegister(d.rs), nil
	case RoleRT:
		return CPURegister(d.rt), nil
	case RoleRD:
		return CPURegister(d.rd), nil
	case RoleCP0RD:
		return CP0Register(d.rd), nil
	case RoleSR:
		return Status(), nil
	case RoleEPC:
		return EPC(), nil
	case RoleFD:
		return CP1Register(d.fd), nil
	case RoleFS:
		return CP1Register(d.fs), nil
	case RoleFT:
		return CP1Register(d.ft), nil
	case RoleFR:
		return CP1Register(d.fmt), nil
	case RoleFCSR:
		return FCSR(), nil
	default:
		return Zero(), fmt.Errorf("%w: %d", ErrUnknownRole, uint8(role))
	}
}

// MustRegister is like Register but panics on an unknown role.
func (d Decoder) MustRegister(role Role) Register {
	reg, err := d.Register(role)
	if err != nil {
		panic(err)
	}
	return reg
}
