package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/fruitfuel/pkg/rbac"
)

func TestPolicy(t *testing.T) {
	admins := rbac.HasRole("admin", "owner")

	assert.True(t, admins.Permits("admin"))
	assert.True(t, admins.Permits("owner"))
	assert.False(t, admins.Permits("customer"))
	assert.False(t, admins.Permits(""))

	assert.NoError(t, admins.Check("admin"))
	assert.ErrorIs(t, admins.Check("customer"), rbac.ErrForbidden)
}
