// Package insts provides MIPS32 instruction field decoding.
//
// This package breaks a 32-bit MIPS machine word into its bitfields and
// resolves the abstract operand roles used by an instruction table into
// concrete registers and immediates. It supports:
//   - R, I and J format integer fields: opcode, rs, rt, rd, shamt, funct, imm, jump
//   - COP1 (floating-point) aliases: fmt, ft, fs, fd
//   - Zero- and sign-extended immediates selected by an immediate format
//   - Register roles for the CPU, CP0, CP1 and HI/LO register files
//
// The decoder knows nothing about opcode semantics. Callers look up the
// roles and immediate format of an instruction elsewhere and ask the
// decoder for the matching values.
//
// Usage:
//
//	d := insts.Decode(0x00641820) // add $v1, $v1, $a0
//	rd, _ := d.Register(insts.RoleRD)
//	fmt.Printf("Opcode: %d, Funct: 0x%X, Rd: %v\n", d.Opcode(), d.Funct(), rd)
package insts
