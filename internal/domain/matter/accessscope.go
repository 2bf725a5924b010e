package matter

import "sort"

// AccessScope restricts who may see or act on a matter. An empty scope means
// the matter is unrestricted and visible firm-wide. A restricted scope allows
// a staff member when their ID is assigned or their department is assigned.
type AccessScope struct {
	assignedUserIDs     map[uint]struct{}
	assignedDepartments map[string]struct{}
}

// NewAccessScope builds a scope from assignment lists. Zero user IDs and empty
// department names are dropped rather than stored.
func NewAccessScope(userIDs []uint, departments []string) AccessScope {
	scope := AccessScope{
		assignedUserIDs:     make(map[uint]struct{}),
		assignedDepartments: make(map[string]struct{}),
	}
	for _, id := range userIDs {
		if id != 0 {
			scope.assignedUserIDs[id] = struct{}{}
		}
	}
	for _, dept := range departments {
		if dept != "" {
			scope.assignedDepartments[dept] = struct{}{}
		}
	}
	return scope
}

// IsRestricted reports whether any assignment exists.
func (s AccessScope) IsRestricted() bool {
	return len(s.assignedUserIDs) > 0 || len(s.assignedDepartments) > 0
}

// Allows decides read/act eligibility for a staff member. Unrestricted scopes
// allow everyone. Otherwise membership in either assignment set is required;
// an empty department never matches.
func (s AccessScope) Allows(userID uint, department string) bool {
	if !s.IsRestricted() {
		return true
	}
	if _, ok := s.assignedUserIDs[userID]; ok {
		return true
	}
	if department == "" {
		return false
	}
	_, ok := s.assignedDepartments[department]
	return ok
}

// AssignedUserIDs returns the assigned user IDs in ascending order.
func (s AccessScope) AssignedUserIDs() []uint {
	ids := make([]uint, 0, len(s.assignedUserIDs))
	for id := range s.assignedUserIDs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// AssignedDepartments returns the assigned department names in ascending order.
func (s AccessScope) AssignedDepartments() []string {
	depts := make([]string, 0, len(s.assignedDepartments))
	for dept := range s.assignedDepartments {
		depts = append(depts, dept)
	}
	sort.Strings(depts)
	return depts
}
