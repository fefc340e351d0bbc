// Package workflow implements the estimation approval chain.
//
// The chain is the fixed order of [entities.EstimationStatus] values. Three statuses
// (auth_resident, auth_super, auth_leader) belong to optional roles and are skipped when the
// role is switched off in the estimation's [entities.RoleActivation]; every other status is
// always visited.
//
// Key functions:
//   - [NextStatus] - first status after the current one that is not skipped
//   - [InitialStatus] - status a new estimation starts in
//   - [RequiredRole] - role that must act to leave the current status
//   - [InheritedSignatures] - skipped roles that inherit the acting approver's signature
//   - [Plan] / [Apply] - one approval step as a pure computation over an estimation
//
// Nothing in this package performs I/O or reads the clock; callers pass "now".
package workflow

import (
	"fmt"

	"estimaciones_obra/internal/domain/entities"
)

// beforeStart is the virtual position preceding registered.
const beforeStart = -1

// gatedBy maps each optional status to the role whose switch controls it.
var gatedBy = map[entities.EstimationStatus]entities.Role{
	entities.StatusAuthResident: entities.RoleResident,
	entities.StatusAuthSuper:    entities.RoleSuperintendent,
	entities.StatusAuthLeader:   entities.RoleLeader,
}

// ownerOf maps a status to the role whose action produces it. registered has no owner:
// it is produced by creation.
var ownerOf = map[entities.EstimationStatus]entities.Role{
	entities.StatusAuthResident:      entities.RoleResident,
	entities.StatusAuthSuper:         entities.RoleSuperintendent,
	entities.StatusAuthLeader:        entities.RoleLeader,
	entities.StatusValidatedCompras:  entities.RoleCompras,
	entities.StatusFacturaSubida:     entities.RoleContratista,
	entities.StatusValidatedFinanzas: entities.RoleFinanzas,
	entities.StatusPaid:              entities.RolePagos,
}

// NextStatus returns the first status strictly after current that is not skipped by the
// activation. Callers check for paid before calling; paid returns [ErrTerminalState].
func NextStatus(current entities.EstimationStatus, activation entities.RoleActivation) (entities.EstimationStatus, error) {
	i, err := entities.IndexOf(current)
	if err != nil {
		return "", err
	}
	if current.IsTerminal() {
		return "", ErrTerminalState
	}
	return nextFrom(i, activation)
}

// InitialStatus resolves the starting status of a new estimation by walking from the virtual
// position before registered. registered is never skipped, so disabled leading roles are
// passed over on the first approval instead, where the acting approver inherits them.
func InitialStatus(activation entities.RoleActivation) entities.EstimationStatus {
	s, err := nextFrom(beforeStart, activation)
	if err != nil {
		// unreachable: paid is never gated so the walk always ends on a status.
		return entities.StatusRegistered
	}
	return s
}

func nextFrom(i int, activation entities.RoleActivation) (entities.EstimationStatus, error) {
	for j := i + 1; ; j++ {
		candidate, ok := entities.StatusAt(j)
		if !ok {
			return "", fmt.Errorf("%w: no status after ordinal %d", entities.ErrUnknownStatus, i)
		}
		if role, gated := gatedBy[candidate]; gated && !activation.IsActive(role) {
			continue
		}
		return candidate, nil
	}
}

// RequiredRole returns the role that must act on an estimation in current.
//
// It is the owner of the status [NextStatus] resolves to, so with every role active it is
// registered→resident, auth_resident→superintendent, auth_super→leader, auth_leader→compras,
// validated_compras→contratista, factura_subida→finanzas, validated_finanzas→pagos. When an
// optional role is off, the owner of the next visited status acts in its place.
func RequiredRole(current entities.EstimationStatus, activation entities.RoleActivation) (entities.Role, error) {
	next, err := NextStatus(current, activation)
	if err != nil {
		return "", err
	}
	return ownerOf[next], nil
}

// OwnerOf returns the role whose approval produces s, false for registered.
func OwnerOf(s entities.EstimationStatus) (entities.Role, bool) {
	r, ok := ownerOf[s]
	return r, ok
}

// StepOf returns the status a role acts on when every role is active: the status right
// before the one it owns. admin has no step.
func StepOf(r entities.Role) (entities.EstimationStatus, bool) {
	for s, owner := range ownerOf {
		if owner != r {
			continue
		}
		i, _ := entities.IndexOf(s)
		return entities.StatusAt(i - 1)
	}
	return "", false
}
