package entities

// Role is the capacity in which a user acts on an estimation.
type Role string

const (
	RoleResident       Role = "resident"
	RoleSuperintendent Role = "superintendent"
	RoleLeader         Role = "leader"
	RoleCompras        Role = "compras"
	RoleContratista    Role = "contratista"
	RoleFinanzas       Role = "finanzas"
	RolePagos          Role = "pagos"

	// RoleAdmin supervises projects: it edits role activation but never approves.
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleResident, RoleSuperintendent, RoleLeader, RoleCompras, RoleContratista, RoleFinanzas, RolePagos, RoleAdmin:
		return true
	}
	return false
}

// IsOptional reports whether the role can be switched off per project/estimation.
func (r Role) IsOptional() bool {
	return r == RoleResident || r == RoleSuperintendent || r == RoleLeader
}

// RoleActivation holds the switches for the three optional intermediate approvers.
//
// Projects carry the defaults; every estimation copies them at creation time and may then be
// edited independently. The value is read fresh on every approval.
type RoleActivation struct {
	ResidentActive       bool `json:"resident_active"`
	SuperintendentActive bool `json:"superintendent_active"`
	LeaderActive         bool `json:"leader_active"`
}

// AllRolesActive is the activation used when a project does not say otherwise.
func AllRolesActive() RoleActivation {
	return RoleActivation{ResidentActive: true, SuperintendentActive: true, LeaderActive: true}
}

// IsActive reports the switch for r. Roles that cannot be switched off are always active.
func (a RoleActivation) IsActive(r Role) bool {
	switch r {
	case RoleResident:
		return a.ResidentActive
	case RoleSuperintendent:
		return a.SuperintendentActive
	case RoleLeader:
		return a.LeaderActive
	}
	return true
}
