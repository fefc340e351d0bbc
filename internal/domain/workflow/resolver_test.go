package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estimaciones_obra/internal/domain/entities"
)

// allActivations enumerates the eight switch combinations.
func allActivations() []entities.RoleActivation {
	out := make([]entities.RoleActivation, 0, 8)
	for mask := 0; mask < 8; mask++ {
		out = append(out, entities.RoleActivation{
			ResidentActive:       mask&1 != 0,
			SuperintendentActive: mask&2 != 0,
			LeaderActive:         mask&4 != 0,
		})
	}
	return out
}

func nonTerminalStatuses() []entities.EstimationStatus {
	all := entities.Statuses()
	return all[:len(all)-1]
}

func TestNextStatus_MonotonicForEveryActivation(t *testing.T) {
	for _, act := range allActivations() {
		for _, current := range nonTerminalStatuses() {
			next, err := NextStatus(current, act)
			require.NoError(t, err)

			from, _ := entities.IndexOf(current)
			to, _ := entities.IndexOf(next)
			assert.Greater(t, to, from, "activation %+v current %s", act, current)
		}
	}
}

func TestNextStatus_AllRolesActiveNeverSkips(t *testing.T) {
	act := entities.AllRolesActive()
	for i, current := range nonTerminalStatuses() {
		next, err := NextStatus(current, act)
		require.NoError(t, err)
		want, _ := entities.StatusAt(i + 1)
		assert.Equal(t, want, next)
	}
}

func TestNextStatus_SkipsDisabledRoles(t *testing.T) {
	tests := []struct {
		name       string
		current    entities.EstimationStatus
		activation entities.RoleActivation
		want       entities.EstimationStatus
	}{
		{
			name:       "resident off jumps to auth_super",
			current:    entities.StatusRegistered,
			activation: entities.RoleActivation{ResidentActive: false, SuperintendentActive: true, LeaderActive: true},
			want:       entities.StatusAuthSuper,
		},
		{
			name:       "superintendent off jumps to auth_leader",
			current:    entities.StatusAuthResident,
			activation: entities.RoleActivation{ResidentActive: true, SuperintendentActive: false, LeaderActive: true},
			want:       entities.StatusAuthLeader,
		},
		{
			name:       "leader off jumps to validated_compras",
			current:    entities.StatusAuthSuper,
			activation: entities.RoleActivation{ResidentActive: true, SuperintendentActive: true, LeaderActive: false},
			want:       entities.StatusValidatedCompras,
		},
		{
			name:       "all optional roles off jumps straight to compras",
			current:    entities.StatusRegistered,
			activation: entities.RoleActivation{},
			want:       entities.StatusValidatedCompras,
		},
		{
			name:       "ungated statuses are never skipped",
			current:    entities.StatusValidatedCompras,
			activation: entities.RoleActivation{},
			want:       entities.StatusFacturaSubida,
		},
		{
			name:       "last step reaches paid",
			current:    entities.StatusValidatedFinanzas,
			activation: entities.RoleActivation{},
			want:       entities.StatusPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextStatus(tt.current, tt.activation)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextStatus_Errors(t *testing.T) {
	_, err := NextStatus(entities.StatusPaid, entities.AllRolesActive())
	assert.ErrorIs(t, err, ErrTerminalState)

	_, err = NextStatus("rejected", entities.AllRolesActive())
	assert.ErrorIs(t, err, entities.ErrUnknownStatus)
}

func TestNextStatus_IsDeterministic(t *testing.T) {
	for _, act := range allActivations() {
		for _, current := range nonTerminalStatuses() {
			first, err1 := NextStatus(current, act)
			second, err2 := NextStatus(current, act)
			require.NoError(t, err1)
			require.NoError(t, err2)
			assert.Equal(t, first, second)
		}
	}
}

func TestInitialStatus(t *testing.T) {
	for _, act := range allActivations() {
		got := InitialStatus(act)
		assert.Equal(t, entities.StatusRegistered, got, "activation %+v", act)

		if !act.ResidentActive {
			assert.NotEqual(t, entities.StatusAuthResident, got)
		}

		// creation and the resolver must agree on the virtual start
		fromWalk, err := nextFrom(beforeStart, act)
		require.NoError(t, err)
		assert.Equal(t, fromWalk, got)
	}
}

func TestInitialStatus_FirstApproverSkipsDisabledLeadingRoles(t *testing.T) {
	tests := []struct {
		activation entities.RoleActivation
		want       entities.Role
	}{
		{entities.RoleActivation{ResidentActive: true, SuperintendentActive: true, LeaderActive: true}, entities.RoleResident},
		{entities.RoleActivation{ResidentActive: false, SuperintendentActive: true, LeaderActive: true}, entities.RoleSuperintendent},
		{entities.RoleActivation{ResidentActive: false, SuperintendentActive: false, LeaderActive: true}, entities.RoleLeader},
		{entities.RoleActivation{ResidentActive: false, SuperintendentActive: false, LeaderActive: false}, entities.RoleCompras},
	}

	for _, tt := range tests {
		got, err := RequiredRole(InitialStatus(tt.activation), tt.activation)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "activation %+v", tt.activation)
	}
}

func TestRequiredRole_AllActive(t *testing.T) {
	act := entities.AllRolesActive()
	want := map[entities.EstimationStatus]entities.Role{
		entities.StatusRegistered:        entities.RoleResident,
		entities.StatusAuthResident:      entities.RoleSuperintendent,
		entities.StatusAuthSuper:         entities.RoleLeader,
		entities.StatusAuthLeader:        entities.RoleCompras,
		entities.StatusValidatedCompras:  entities.RoleContratista,
		entities.StatusFacturaSubida:     entities.RoleFinanzas,
		entities.StatusValidatedFinanzas: entities.RolePagos,
	}
	for status, role := range want {
		got, err := RequiredRole(status, act)
		require.NoError(t, err)
		assert.Equal(t, role, got, "status %s", status)
	}

	_, err := RequiredRole(entities.StatusPaid, act)
	assert.ErrorIs(t, err, ErrTerminalState)
}

func TestRequiredRole_NeverADisabledRole(t *testing.T) {
	for _, act := range allActivations() {
		for _, current := range nonTerminalStatuses() {
			role, err := RequiredRole(current, act)
			require.NoError(t, err)
			assert.True(t, act.IsActive(role), "activation %+v current %s got %s", act, current, role)
		}
	}
}

func TestStepOf(t *testing.T) {
	tests := map[entities.Role]entities.EstimationStatus{
		entities.RoleResident:       entities.StatusRegistered,
		entities.RoleSuperintendent: entities.StatusAuthResident,
		entities.RoleLeader:         entities.StatusAuthSuper,
		entities.RoleCompras:        entities.StatusAuthLeader,
		entities.RoleContratista:    entities.StatusValidatedCompras,
		entities.RoleFinanzas:       entities.StatusFacturaSubida,
		entities.RolePagos:          entities.StatusValidatedFinanzas,
	}
	for role, want := range tests {
		got, ok := StepOf(role)
		assert.True(t, ok)
		assert.Equal(t, want, got, "role %s", role)
	}

	_, ok := StepOf(entities.RoleAdmin)
	assert.False(t, ok)
}
