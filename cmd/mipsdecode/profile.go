package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sarchlab/mipsdecode/insts"
)

// Profile describes how one instruction uses its fields: which word it
// matches, which immediate format it reads and which register roles it
// touches.
type Profile struct {
	Name string `json:"name"`

	// Opcode must match bits [31:26].
	Opcode uint32 `json:"opcode"`

	// Funct, when set, must match bits [5:0].
	Funct *uint32 `json:"funct,omitempty"`

	// RS, when set, must match bits [25:21]. COP0/COP1 use it to select
	// the move or format sub-opcode.
	RS *uint32 `json:"rs,omitempty"`

	// Format is the immediate format character: N, S, J, L, or anything
	// else for a sign-extended arithmetic immediate.
	Format string `json:"format"`

	// Roles lists register roles in operand order, e.g. ["RD", "RS", "RT"].
	Roles []string `json:"roles"`
}

// ProfileConfig is the on-disk form of a profile table.
type ProfileConfig struct {
	Profiles []Profile `json:"profiles"`
}

func u32(v uint32) *uint32 { return &v }

// DefaultProfiles returns profiles for a common MIPS32 subset.
func DefaultProfiles() *ProfileConfig {
	return &ProfileConfig{Profiles: []Profile{
		{Name: "sll", Opcode: 0x00, Funct: u32(0x00), Format: "S", Roles: []string{"RD", "RT"}},
		{Name: "srl", Opcode: 0x00, Funct: u32(0x02), Format: "S", Roles: []string{"RD", "RT"}},
		{Name: "sra", Opcode: 0x00, Funct: u32(0x03), Format: "S", Roles: []string{"RD", "RT"}},
		{Name: "jr", Opcode: 0x00, Funct: u32(0x08), Format: "N", Roles: []string{"RS"}},
		{Name: "jalr", Opcode: 0x00, Funct: u32(0x09), Format: "N", Roles: []string{"RD", "RS"}},
		{Name: "syscall", Opcode: 0x00, Funct: u32(0x0C), Format: "N"},
		{Name: "mfhi", Opcode: 0x00, Funct: u32(0x10), Format: "N", Roles: []string{"RD", "HI"}},
		{Name: "mflo", Opcode: 0x00, Funct: u32(0x12), Format: "N", Roles: []string{"RD", "LO"}},
		{Name: "mult", Opcode: 0x00, Funct: u32(0x18), Format: "N", Roles: []string{"HI_LO", "RS", "RT"}},
		{Name: "multu", Opcode: 0x00, Funct: u32(0x19), Format: "N", Roles: []string{"HI_LO", "RS", "RT"}},
		{Name: "add", Opcode: 0x00, Funct: u32(0x20), Format: "N", Roles: []string{"RD", "RS", "RT"}},
		{Name: "addu", Opcode: 0x00, Funct: u32(0x21), Format: "N", Roles: []string{"RD", "RS", "RT"}},
		{Name: "sub", Opcode: 0x00, Funct: u32(0x22), Format: "N", Roles: []string{"RD", "RS", "RT"}},
		{Name: "and", Opcode: 0x00, Funct: u32(0x24), Format: "N", Roles: []string{"RD", "RS", "RT"}},
		{Name: "or", Opcode: 0x00, Funct: u32(0x25), Format: "N", Roles: []string{"RD", "RS", "RT"}},
		{Name: "slt", Opcode: 0x00, Funct: u32(0x2A), Format: "N", Roles: []string{"RD", "RS", "RT"}},
		{Name: "j", Opcode: 0x02, Format: "J"},
		{Name: "jal", Opcode: 0x03, Format: "J", Roles: []string{"RA"}},
		{Name: "beq", Opcode: 0x04, Format: "I", Roles: []string{"RS", "RT"}},
		{Name: "bne", Opcode: 0x05, Format: "I", Roles: []string{"RS", "RT"}},
		{Name: "addi", Opcode: 0x08, Format: "I", Roles: []string{"RT", "RS"}},
		{Name: "addiu", Opcode: 0x09, Format: "I", Roles: []string{"RT", "RS"}},
		{Name: "slti", Opcode: 0x0A, Format: "I", Roles: []string{"RT", "RS"}},
		{Name: "andi", Opcode: 0x0C, Format: "L", Roles: []string{"RT", "RS"}},
		{Name: "ori", Opcode: 0x0D, Format: "L", Roles: []string{"RT", "RS"}},
		{Name: "xori", Opcode: 0x0E, Format: "L", Roles: []string{"RT", "RS"}},
		{Name: "lui", Opcode: 0x0F, Format: "L", Roles: []string{"RT"}},
		{Name: "mfc0", Opcode: 0x10, RS: u32(0x00), Format: "N", Roles: []string{"RT", "CP0_RD"}},
		{Name: "mtc0", Opcode: 0x10, RS: u32(0x04), Format: "N", Roles: []string{"CP0_RD", "RT"}},
		{Name: "eret", Opcode: 0x10, RS: u32(0x10), Funct: u32(0x18), Format: "N", Roles: []string{"EPC", "SR"}},
		{Name: "cfc1", Opcode: 0x11, RS: u32(0x02), Format: "N", Roles: []string{"RT", "FCSR"}},
		{Name: "add.s", Opcode: 0x11, RS: u32(0x10), Funct: u32(0x00), Format: "N", Roles: []string{"FD", "FS", "FT"}},
		{Name: "add.d", Opcode: 0x11, RS: u32(0x11), Funct: u32(0x00), Format: "N", Roles: []string{"FD", "FS", "FT"}},
		{Name: "madd.s", Opcode: 0x13, Funct: u32(0x20), Format: "N", Roles: []string{"FD", "FR", "FS", "FT"}},
		{Name: "lw", Opcode: 0x23, Format: "I", Roles: []string{"RT", "RS"}},
		{Name: "sw", Opcode: 0x2B, Format: "I", Roles: []string{"RT", "RS"}},
	}}
}

// LoadProfiles reads a profile table from a JSON file and merges it over
// the defaults. A file profile replaces the default of the same name.
func LoadProfiles(path string) (*ProfileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var file ProfileConfig
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse profile file: %w", err)
	}

	config := DefaultProfiles()
	config.Merge(&file)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile file %s: %w", path, err)
	}

	return config, nil
}

// SaveProfiles writes the profile table to a JSON file.
func (c *ProfileConfig) SaveProfiles(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize profiles: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile file: %w", err)
	}

	return nil
}

// Merge folds other into c. Profiles in other win over same-named ones
// in c and are tried before them.
func (c *ProfileConfig) Merge(other *ProfileConfig) {
	override := make(map[string]bool, len(other.Profiles))
	merged := make([]Profile, 0, len(c.Profiles)+len(other.Profiles))
	for _, p := range other.Profiles {
		override[p.Name] = true
		merged = append(merged, p)
	}
	for _, p := range c.Profiles {
		if !override[p.Name] {
			merged = append(merged, p)
		}
	}
	c.Profiles = merged
}

// Validate checks every profile for well-formed fields and roles.
func (c *ProfileConfig) Validate() error {
	seen := make(map[string]bool, len(c.Profiles))
	for _, p := range c.Profiles {
		if p.Name == "" {
			return fmt.Errorf("profile with opcode 0x%02X has no name", p.Opcode)
		}
		if seen[p.Name] {
			return fmt.Errorf("profile %q defined twice", p.Name)
		}
		seen[p.Name] = true

		if p.Opcode > 0x3F {
			return fmt.Errorf("profile %q: opcode must be < 64", p.Name)
		}
		if p.Funct != nil && *p.Funct > 0x3F {
			return fmt.Errorf("profile %q: funct must be < 64", p.Name)
		}
		if p.RS != nil && *p.RS > 0x1F {
			return fmt.Errorf("profile %q: rs must be < 32", p.Name)
		}
		if len(p.Format) != 1 {
			return fmt.Errorf("profile %q: format must be a single character", p.Name)
		}
		for _, r := range p.Roles {
			if _, err := insts.ParseRole(r); err != nil {
				return fmt.Errorf("profile %q: %w", p.Name, err)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the profile table.
func (c *ProfileConfig) Clone() *ProfileConfig {
	clone := &ProfileConfig{Profiles: make([]Profile, len(c.Profiles))}
	for i, p := range c.Profiles {
		cp := p
		if p.Funct != nil {
			cp.Funct = u32(*p.Funct)
		}
		if p.RS != nil {
			cp.RS = u32(*p.RS)
		}
		cp.Roles = append([]string(nil), p.Roles...)
		clone.Profiles[i] = cp
	}
	return clone
}

// Lookup returns the profile with the given name.
func (c *ProfileConfig) Lookup(name string) (*Profile, bool) {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i], true
		}
	}
	return nil, false
}

// Match returns the first profile whose opcode, funct and rs constraints
// all hold for d.
func (c *ProfileConfig) Match(d insts.Decoder) (*Profile, bool) {
	for i := range c.Profiles {
		if c.Profiles[i].Matches(d) {
			return &c.Profiles[i], true
		}
	}
	return nil, false
}

// Matches reports whether d satisfies the constraints of p.
func (p *Profile) Matches(d insts.Decoder) bool {
	if d.Opcode() != p.Opcode {
		return false
	}
	if p.Funct != nil && d.Funct() != *p.Funct {
		return false
	}
	if p.RS != nil && d.RS() != *p.RS {
		return false
	}
	return true
}

// ImmFormat returns the parsed immediate format of p.
func (p *Profile) ImmFormat() insts.ImmFormat {
	if p.Format == "" {
		return insts.ImmArithmetic
	}
	return insts.ParseImmFormat(p.Format[0])
}

// Operand is one resolved register operand.
type Operand struct {
	Role     insts.Role
	Register insts.Register
}

// Resolve looks up every role of p in d.
func (p *Profile) Resolve(d insts.Decoder) ([]Operand, error) {
	ops := make([]Operand, 0, len(p.Roles))
	for _, name := range p.Roles {
		role, err := insts.ParseRole(name)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}
		reg, err := d.Register(role)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}
		ops = append(ops, Operand{Role: role, Register: reg})
	}
	return ops, nil
}
