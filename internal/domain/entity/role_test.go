package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"super_admin", "doctor", "patient"} {
		role, err := ParseRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := ParseRole("admin")
	assert.Error(t, err)

	_, err = ParseRole("")
	assert.Error(t, err)
}

func TestRoleDashboardPath(t *testing.T) {
	assert.Equal(t, "/admin/dashboard", RoleSuperAdmin.DashboardPath())
	assert.Equal(t, "/doctor/dashboard", RoleDoctor.DashboardPath())
	assert.Equal(t, "/patient/dashboard", RolePatient.DashboardPath())
	assert.Equal(t, "/", Role("nurse").DashboardPath())
}
