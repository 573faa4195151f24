// Validate decoder hot path - measures allocations and throughput of
// decoding plus operand resolution.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"

	"github.com/sarchlab/mipsdecode/insts"
)

var (
	iterations = flag.Int("n", 100000, "iterations over the sample words")
	cpuProfile = flag.String("cpuprofile", "", "directory to write a CPU profile to")
)

type sample struct {
	word   uint32
	format insts.ImmFormat
	roles  []insts.Role
}

var samples = []sample{
	{0x00641820, insts.ImmNone, []insts.Role{insts.RoleRD, insts.RoleRS, insts.RoleRT}}, // add $v1, $v1, $a0
	{0x2128FFFF, insts.ImmArithmetic, []insts.Role{insts.RoleRT, insts.RoleRS}},         // addi $t0, $t1, -1
	{0x35288000, insts.ImmLogical, []insts.Role{insts.RoleRT, insts.RoleRS}},            // ori $t0, $t1, 0x8000
	{0x0C100000, insts.ImmJump, []insts.Role{insts.RoleRA}},                             // jal 0x00400000
	{0x46062080, insts.ImmNone, []insts.Role{insts.RoleFD, insts.RoleFS, insts.RoleFT}}, // add.s $f2, $f4, $f6
}

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.Quiet).Stop()
	}

	var sink uint64

	// Warm up
	for i := 0; i < 1000; i++ {
		sink += decodeAll()
	}

	runtime.GC()
	var m1, m2 runtime.MemStats
	runtime.ReadMemStats(&m1)

	start := time.Now()
	for i := 0; i < *iterations; i++ {
		sink += decodeAll()
	}

	elapsed := time.Since(start)
	runtime.ReadMemStats(&m2)

	totalDecodes := *iterations * len(samples)
	allocations := m2.Mallocs - m1.Mallocs
	allocatedBytes := m2.TotalAlloc - m1.TotalAlloc

	fmt.Printf("Decoder Validation Results:\n")
	fmt.Printf("===========================\n")
	fmt.Printf("Total decode operations: %d\n", totalDecodes)
	fmt.Printf("Time elapsed: %v\n", elapsed)
	fmt.Printf("Decodes per second: %.0f\n", float64(totalDecodes)/elapsed.Seconds())
	fmt.Printf("Allocations: %d\n", allocations)
	fmt.Printf("Allocated bytes: %d\n", allocatedBytes)
	fmt.Printf("Allocations per decode: %.3f\n", float64(allocations)/float64(totalDecodes))
	fmt.Printf("Checksum: 0x%X\n", sink)

	if float64(allocations)/float64(totalDecodes) >= 0.01 {
		fmt.Printf("\nWARNING: decode path allocates\n")
		return 1
	}
	fmt.Printf("\nOK: decode path is allocation-free\n")
	return 0
}

// decodeAll decodes every sample and folds the resolved values into a
// checksum so the work cannot be optimized away.
func decodeAll() uint64 {
	var sum uint64
	for i := range samples {
		s := &samples[i]
		d := insts.Decode(s.word)
		sum += d.Imm64(s.format)
		for _, role := range s.roles {
			reg, err := d.Register(role)
			if err != nil {
				panic(err)
			}
			sum += uint64(reg.File())<<8 | uint64(reg.Index())
		}
	}
	return sum
}
