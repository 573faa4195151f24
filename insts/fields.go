package insts

import "github.com/sarchlab/mipsdecode/bits"

// Field names a bitfield of a MIPS instruction word.
type Field uint8

// Instruction fields. The COP1 fields reuse the bit positions of the
// integer fields: fmt=rs, ft=rt, fs=rd and fd=shamt.
const (
	FieldOpcode Field = iota
	FieldRS
	FieldRT
	FieldRD
	FieldShamt
	FieldFunct
	FieldImm
	FieldJump
	FieldBytes
	FieldFmt
	FieldFT
	FieldFS
	FieldFD

	numFields
)

// Field widths and offsets, bits [offset+width-1:offset].
const (
	opcodeWidth, opcodeOffset = 6, 26
	rsWidth, rsOffset         = 5, 21
	rtWidth, rtOffset         = 5, 16
	rdWidth, rdOffset         = 5, 11
	shamtWidth, shamtOffset   = 5, 6
	functWidth, functOffset   = 6, 0
	immWidth, immOffset       = 16, 0
	jumpWidth, jumpOffset     = 26, 0
	bytesWidth, bytesOffset   = 32, 0
)

const (
	maskOpcode = (1<<opcodeWidth - 1) << opcodeOffset // 0xFC000000
	maskRS     = (1<<rsWidth - 1) << rsOffset         // 0x03E00000
	maskRT     = (1<<rtWidth - 1) << rtOffset         // 0x001F0000
	maskRD     = (1<<rdWidth - 1) << rdOffset         // 0x0000F800
	maskShamt  = (1<<shamtWidth - 1) << shamtOffset   // 0x000007C0
	maskFunct  = (1<<functWidth - 1) << functOffset   // 0x0000003F
	maskImm    = (1<<immWidth - 1) << immOffset       // 0x0000FFFF
	maskJump   = (1<<jumpWidth - 1) << jumpOffset     // 0x03FFFFFF
	maskBytes  = (1<<bytesWidth - 1) << bytesOffset   // 0xFFFFFFFF

	maskFmt = maskRS
	maskFT  = maskRT
	maskFS  = maskRD
	maskFD  = maskShamt
)

type fieldLayout struct {
	name   string
	width  uint32
	offset uint32
	mask   uint32
}

var layouts = [numFields]fieldLayout{
	FieldOpcode: {"opcode", opcodeWidth, opcodeOffset, maskOpcode},
	FieldRS:     {"rs", rsWidth, rsOffset, maskRS},
	FieldRT:     {"rt", rtWidth, rtOffset, maskRT},
	FieldRD:     {"rd", rdWidth, rdOffset, maskRD},
	FieldShamt:  {"shamt", shamtWidth, shamtOffset, maskShamt},
	FieldFunct:  {"funct", functWidth, functOffset, maskFunct},
	FieldImm:    {"imm", immWidth, immOffset, maskImm},
	FieldJump:   {"jump", jumpWidth, jumpOffset, maskJump},
	FieldBytes:  {"bytes", bytesWidth, bytesOffset, maskBytes},
	FieldFmt:    {"fmt", rsWidth, rsOffset, maskFmt},
	FieldFT:     {"ft", rtWidth, rtOffset, maskFT},
	FieldFS:     {"fs", rdWidth, rdOffset, maskFS},
	FieldFD:     {"fd", shamtWidth, shamtOffset, maskFD},
}

// Fields returns every field in layout order.
func Fields() []Field {
	fields := make([]Field, numFields)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// Valid reports whether f is one of the defined fields.
func (f Field) Valid() bool {
	return f < numFields
}

// Width returns the field width in bits, or 0 for an unknown field.
func (f Field) Width() uint32 {
	if !f.Valid() {
		return 0
	}
	return layouts[f].width
}

// Offset returns the position of the lowest field bit.
func (f Field) Offset() uint32 {
	if !f.Valid() {
		return 0
	}
	return layouts[f].offset
}

// Mask returns the in-word mask of the field, or 0 for an unknown field.
func (f Field) Mask() uint32 {
	if !f.Valid() {
		return 0
	}
	return layouts[f].mask
}

// Extract pulls the field out of word.
func (f Field) Extract(word uint32) uint32 {
	return bits.Extract(word, f.Mask())
}

// Insert returns word with the field set to value.
func (f Field) Insert(word, value uint32) uint32 {
	return bits.Insert(word, f.Mask(), value)
}

func (f Field) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return layouts[f].name
}
