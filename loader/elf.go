// Package loader reads MIPS32 ELF executables and hands out their
// instruction words.
package loader

import (
	"debug/elf"
	"encoding/binary"
	"fmt"
	"io"
)

// SegmentFlags represents memory protection flags for a segment.
type SegmentFlags uint32

const (
	// SegmentFlagExecute indicates the segment is executable.
	SegmentFlagExecute SegmentFlags = 1 << iota
	// SegmentFlagWrite indicates the segment is writable.
	SegmentFlagWrite
	// SegmentFlagRead indicates the segment is readable.
	SegmentFlagRead
)

// InstructionSize is the size of a MIPS32 instruction in bytes.
const InstructionSize = 4

// Segment represents a loadable segment from an ELF binary.
type Segment struct {
	// VirtAddr is the virtual address where this segment should be loaded.
	VirtAddr uint32
	// Data contains the segment contents from the file.
	Data []byte
	// MemSize is the size in memory (may be larger than len(Data) for BSS).
	MemSize uint32
	// Flags contains the segment protection flags.
	Flags SegmentFlags
}

// Executable reports whether the segment holds code.
func (s Segment) Executable() bool {
	return s.Flags&SegmentFlagExecute != 0
}

// Program represents a loaded MIPS32 ELF program.
type Program struct {
	// EntryPoint is the virtual address where execution should begin.
	EntryPoint uint32
	// ByteOrder is the byte order of the instruction words.
	ByteOrder binary.ByteOrder
	// Segments contains all loadable segments from the ELF file.
	Segments []Segment
}

// Word is one instruction word and the address it was fetched from.
type Word struct {
	Addr  uint32
	Value uint32
}

// Words returns the instruction words of seg in program byte order.
// A trailing partial word is dropped.
func (p *Program) Words(seg Segment) []Word {
	n := len(seg.Data) / InstructionSize
	words := make([]Word, n)
	for i := 0; i < n; i++ {
		off := i * InstructionSize
		words[i] = Word{
			Addr:  seg.VirtAddr + uint32(off),
			Value: p.ByteOrder.Uint32(seg.Data[off : off+InstructionSize]),
		}
	}
	return words
}

// Code returns the instruction words of every executable segment in
// segment order.
func (p *Program) Code() []Word {
	var words []Word
	for _, seg := range p.Segments {
		if seg.Executable() {
			words = append(words, p.Words(seg)...)
		}
	}
	return words
}

// Load parses a MIPS32 ELF binary from path.
func Load(path string) (*Program, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ELF file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return fromFile(f)
}

// Read parses a MIPS32 ELF binary from r.
func Read(r io.ReaderAt) (*Program, error) {
	f, err := elf.NewFile(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ELF file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return fromFile(f)
}

func fromFile(f *elf.File) (*Program, error) {
	if f.Class != elf.ELFCLASS32 {
		return nil, fmt.Errorf("not a 32-bit ELF file")
	}

	if f.Machine != elf.EM_MIPS {
		return nil, fmt.Errorf("not a MIPS ELF file (machine type: %v)", f.Machine)
	}

	prog := &Program{
		EntryPoint: uint32(f.Entry),
		ByteOrder:  f.ByteOrder,
	}

	for _, phdr := range f.Progs {
		if phdr.Type != elf.PT_LOAD {
			continue
		}

		data := make([]byte, phdr.Filesz)
		if phdr.Filesz > 0 {
			n, err := phdr.ReadAt(data, 0)
			if err != nil && err != io.EOF {
				return nil, fmt.Errorf("failed to read segment at 0x%x: %w", phdr.Vaddr, err)
			}
			if uint64(n) != phdr.Filesz {
				return nil, fmt.Errorf("short read for segment at 0x%x: got %d bytes, expected %d",
					phdr.Vaddr, n, phdr.Filesz)
			}
		}

		var flags SegmentFlags
		if phdr.Flags&elf.PF_X != 0 {
			flags |= SegmentFlagExecute
		}
		if phdr.Flags&elf.PF_W != 0 {
			flags |= SegmentFlagWrite
		}
		if phdr.Flags&elf.PF_R != 0 {
			flags |= SegmentFlagRead
		}

		prog.Segments = append(prog.Segments, Segment{
			VirtAddr: uint32(phdr.Vaddr),
			Data:     data,
			MemSize:  uint32(phdr.Memsz),
			Flags:    flags,
		})
	}

	return prog, nil
}
