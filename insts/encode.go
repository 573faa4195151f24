package insts

// EncodeR builds an R-format word: opcode | rs | rt | rd | shamt | funct.
// Each value is truncated to its field width.
func EncodeR(opcode, rs, rt, rd, shamt, funct uint32) uint32 {
	var word uint32
	word = FieldOpcode.Insert(word, opcode)
	word = FieldRS.Insert(word, rs)
	word = FieldRT.Insert(word, rt)
	word = FieldRD.Insert(word, rd)
	word = FieldShamt.Insert(word, shamt)
	word = FieldFunct.Insert(word, funct)
	return word
}

// EncodeI builds an I-format word: opcode | rs | rt | imm.
func EncodeI(opcode, rs, rt, imm uint32) uint32 {
	var word uint32
	word = FieldOpcode.Insert(word, opcode)
	word = FieldRS.Insert(word, rs)
	word = FieldRT.Insert(word, rt)
	word = FieldImm.Insert(word, imm)
	return word
}

// EncodeJ builds a J-format word: opcode | target.
func EncodeJ(opcode, target uint32) uint32 {
	return FieldJump.Insert(FieldOpcode.Insert(0, opcode), target)
}

// EncodeFR builds a COP1 register-format word:
// opcode | fmt | ft | fs | fd | funct.
func EncodeFR(opcode, fmt, ft, fs, fd, funct uint32) uint32 {
	var word uint32
	word = FieldOpcode.Insert(word, opcode)
	word = FieldFmt.Insert(word, fmt)
	word = FieldFT.Insert(word, ft)
	word = FieldFS.Insert(word, fs)
	word = FieldFD.Insert(word, fd)
	word = FieldFunct.Insert(word, funct)
	return word
}
