package insts

import "fmt"

// RegisterFile identifies the register file a Register belongs to.
type RegisterFile uint8

// Register files.
const (
	FileCPU     RegisterFile = iota // general-purpose registers $0-$31
	FileCP0                         // system control coprocessor
	FileCP1                         // floating-point registers $f0-$f31
	FileSpecial                     // HI, LO and FCSR
)

// Register counts per file.
const (
	NumCPURegisters = 32
	NumCP0Registers = 32
	NumCP1Registers = 32
)

// Fixed register indices.
const (
	ReturnAddressIndex = 31 // $ra
	StatusIndex        = 12 // CP0 Status
	CauseIndex         = 13 // CP0 Cause
	EPCIndex           = 14 // CP0 EPC

	specialHI   = 0
	specialLO   = 1
	specialFCSR = 2
)

// Register names one physical register. The zero value is $zero.
type Register struct {
	file  RegisterFile
	index uint8
}

// CPURegister returns general-purpose register i. Only the low five
// bits of i are used.
func CPURegister(i uint32) Register {
	return Register{file: FileCPU, index: uint8(i & 0x1F)}
}

// CP0Register returns coprocessor-0 register i.
func CP0Register(i uint32) Register {
	return Register{file: FileCP0, index: uint8(i & 0x1F)}
}

// CP1Register returns floating-point register i.
func CP1Register(i uint32) Register {
	return Register{file: FileCP1, index: uint8(i & 0x1F)}
}

// Zero returns the hard-wired zero register $zero.
func Zero() Register { return Register{} }

// ReturnAddress returns $ra.
func ReturnAddress() Register { return CPURegister(ReturnAddressIndex) }

// HI returns the HI accumulator.
func HI() Register { return Register{file: FileSpecial, index: specialHI} }

// LO returns the LO accumulator.
func LO() Register { return Register{file: FileSpecial, index: specialLO} }

// FCSR returns the floating-point control/status register.
func FCSR() Register { return Register{file: FileSpecial, index: specialFCSR} }

// Status returns the CP0 Status register.
func Status() Register { return CP0Register(StatusIndex) }

// EPC returns the CP0 exception program counter.
func EPC() Register { return CP0Register(EPCIndex) }

// File returns the register file of r.
func (r Register) File() RegisterFile { return r.file }

// Index returns the register number of r within its file.
func (r Register) Index() uint8 { return r.index }

// IsZero reports whether r is $zero, which always reads as 0.
func (r Register) IsZero() bool { return r == Register{} }

var cpuNames = [NumCPURegisters]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

var cp0Names = map[uint8]string{
	0:           "Index",
	8:           "BadVAddr",
	9:           "Count",
	11:          "Compare",
	StatusIndex: "Status",
	CauseIndex:  "Cause",
	EPCIndex:    "EPC",
	15:          "PRId",
}

// String returns the assembler name of the register.
func (r Register) String() string {
	switch r.file {
	case FileCPU:
		return "$" + cpuNames[r.index&0x1F]
	case FileCP0:
		if name, ok := cp0Names[r.index]; ok {
			return name
		}
		return fmt.Sprintf("$cp0_%d", r.index)
	case FileCP1:
		return fmt.Sprintf("$f%d", r.index)
	case FileSpecial:
		switch r.index {
		case specialHI:
			return "hi"
		case specialLO:
			return "lo"
		case specialFCSR:
			return "fcsr"
		}
	}
	return fmt.Sprintf("<file %d reg %d>", r.file, r.index)
}

func (f RegisterFile) String() string {
	switch f {
	case FileCPU:
		return "cpu"
	case FileCP0:
		return "cp0"
	case FileCP1:
		return "cp1"
	case FileSpecial:
		return "special"
	default:
		return fmt.Sprintf("RegisterFile(%d)", uint8(f))
	}
}
