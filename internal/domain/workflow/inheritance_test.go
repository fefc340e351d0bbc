package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estimaciones_obra/internal/domain/entities"
)

func TestInheritedSignatures(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		previous   entities.EstimationStatus
		activation entities.RoleActivation
		wantRoles  []entities.Role
	}{
		{
			name:       "sequential approval inherits nothing",
			previous:   entities.StatusRegistered,
			activation: entities.AllRolesActive(),
			wantRoles:  nil,
		},
		{
			name:       "resident skipped",
			previous:   entities.StatusRegistered,
			activation: entities.RoleActivation{ResidentActive: false, SuperintendentActive: true, LeaderActive: true},
			wantRoles:  []entities.Role{entities.RoleResident},
		},
		{
			name:       "superintendent skipped after resident",
			previous:   entities.StatusAuthResident,
			activation: entities.RoleActivation{ResidentActive: true, SuperintendentActive: false, LeaderActive: true},
			wantRoles:  []entities.Role{entities.RoleSuperintendent},
		},
		{
			name:       "every optional role skipped",
			previous:   entities.StatusRegistered,
			activation: entities.RoleActivation{},
			wantRoles:  []entities.Role{entities.RoleResident, entities.RoleSuperintendent, entities.RoleLeader},
		},
		{
			name:       "auth_leader to validated_compras with all roles off",
			previous:   entities.StatusAuthLeader,
			activation: entities.RoleActivation{},
			wantRoles:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := NextStatus(tt.previous, tt.activation)
			require.NoError(t, err)

			got, err := InheritedSignatures(tt.previous, next, tt.activation, "Marta Ruiz", now)
			require.NoError(t, err)

			var roles []entities.Role
			for _, s := range got {
				roles = append(roles, s.Role)
				assert.Equal(t, "Marta Ruiz", s.SignedBy)
				assert.True(t, s.ApprovedAt.Equal(now))
			}
			assert.Equal(t, tt.wantRoles, roles)
		})
	}
}

func TestInheritedSignatures_NeverMarksActiveRole(t *testing.T) {
	now := time.Now()
	for _, act := range allActivations() {
		for _, current := range nonTerminalStatuses() {
			next, err := NextStatus(current, act)
			require.NoError(t, err)

			got, err := InheritedSignatures(current, next, act, "x", now)
			require.NoError(t, err)
			for _, s := range got {
				assert.False(t, act.IsActive(s.Role), "activation %+v marked active role %s", act, s.Role)
			}
		}
	}
}

func TestInheritedSignatures_UnknownStatus(t *testing.T) {
	_, err := InheritedSignatures("bogus", entities.StatusPaid, entities.RoleActivation{}, "x", time.Now())
	assert.ErrorIs(t, err, entities.ErrUnknownStatus)

	_, err = InheritedSignatures(entities.StatusRegistered, "bogus", entities.RoleActivation{}, "x", time.Now())
	assert.ErrorIs(t, err, entities.ErrUnknownStatus)
}
