package insts

import (
	"fmt"
	"strings"
)

// Role identifies which operand of an instruction a register plays,
// independent of the register number encoded in the word.
type Role uint8

// Register roles. The first group carries a register index taken from a
// decoded field; the rest always name the same register.
const (
	RoleRS Role = iota
	RoleRT
	RoleRD
	RoleCP0RD
	RoleSR
	RoleEPC
	RoleFR
	RoleFT
	RoleFS
	RoleFD
	RoleFCSR
	RoleZERO
	RoleRA
	RoleHI
	RoleLO
	RoleHILO

	numRoles
)

// Dst is the role of an instruction destination.
type Dst = Role

var roleNames = [numRoles]string{
	RoleRS:    "RS",
	RoleRT:    "RT",
	RoleRD:    "RD",
	RoleCP0RD: "CP0_RD",
	RoleSR:    "SR",
	RoleEPC:   "EPC",
	RoleFR:    "FR",
	RoleFT:    "FT",
	RoleFS:    "FS",
	RoleFD:    "FD",
	RoleFCSR:  "FCSR",
	RoleZERO:  "ZERO",
	RoleRA:    "RA",
	RoleHI:    "HI",
	RoleLO:    "LO",
	RoleHILO:  "HI_LO",
}

// Roles returns every defined role.
func Roles() []Role {
	roles := make([]Role, numRoles)
	for i := range roles {
		roles[i] = Role(i)
	}
	return roles
}

// ParseRole looks a role up by its table name, such as "RS" or "CP0_RD".
// Matching ignores case.
func ParseRole(name string) (Role, error) {
	for i, n := range roleNames {
		if strings.EqualFold(n, name) {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, name)
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	return r < numRoles
}

// IsExplicit reports whether the role takes its register from the
// instruction word.
func (r Role) IsExplicit() bool {
	switch r {
	case RoleRS, RoleRT, RoleRD, RoleCP0RD,
		RoleFR, RoleFT, RoleFS, RoleFD, RoleFCSR:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
	return roleNames[r]
}
