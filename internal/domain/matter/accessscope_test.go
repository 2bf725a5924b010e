package matter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessScope_UnrestrictedAllowsEveryone(t *testing.T) {
	scope := NewAccessScope(nil, nil)

	assert.False(t, scope.IsRestricted())
	assert.True(t, scope.Allows(1, "litigation"))
	assert.True(t, scope.Allows(999, ""))
	assert.True(t, scope.Allows(0, ""))
}

func TestAccessScope_AssignedUser(t *testing.T) {
	scope := NewAccessScope([]uint{7, 8}, nil)

	assert.True(t, scope.IsRestricted())
	assert.True(t, scope.Allows(7, ""))
	assert.True(t, scope.Allows(8, "conveyancing"))
	assert.False(t, scope.Allows(9, ""))
}

func TestAccessScope_AssignedDepartment(t *testing.T) {
	scope := NewAccessScope(nil, []string{"litigation"})

	assert.True(t, scope.Allows(1, "litigation"))
	assert.False(t, scope.Allows(1, "conveyancing"))
	assert.False(t, scope.Allows(1, ""), "missing department must not match")
}

func TestAccessScope_UserOrDepartmentSuffices(t *testing.T) {
	scope := NewAccessScope([]uint{7}, []string{"litigation"})

	assert.True(t, scope.Allows(7, "conveyancing"), "assigned user in another department")
	assert.True(t, scope.Allows(3, "litigation"), "unassigned user in assigned department")
	assert.False(t, scope.Allows(3, "conveyancing"))
}

func TestNewAccessScope_DropsEmptyAssignments(t *testing.T) {
	scope := NewAccessScope([]uint{0}, []string{""})

	assert.False(t, scope.IsRestricted())
	assert.Empty(t, scope.AssignedUserIDs())
	assert.Empty(t, scope.AssignedDepartments())
}

func TestAccessScope_AssignmentsAreSorted(t *testing.T) {
	scope := NewAccessScope([]uint{9, 2, 5}, []string{"tax", "estates", "litigation"})

	assert.Equal(t, []uint{2, 5, 9}, scope.AssignedUserIDs())
	assert.Equal(t, []string{"estates", "litigation", "tax"}, scope.AssignedDepartments())
}
