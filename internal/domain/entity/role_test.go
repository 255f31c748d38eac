package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleCustomer.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRoleFromString_FallsBackToCustomer(t *testing.T) {
	assert.Equal(t, RoleAdmin, RoleFromString("admin"))
	assert.Equal(t, RoleCustomer, RoleFromString("customer"))
	assert.Equal(t, RoleCustomer, RoleFromString("superuser"))
	assert.Equal(t, RoleCustomer, RoleFromString(""))
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleCustomer}).IsAdmin())
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.True(t, OrderStatusCompleted.IsValid())
	assert.True(t, OrderStatusCancelled.IsValid())
	assert.False(t, OrderStatus("shipped").IsValid())
}
