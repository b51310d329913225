// File: internal/store/scope.go
package store

import (
	"github.com/google/uuid"

	"task-management-api/internal/model"
)

// Scope is the ownership predicate applied to every task query. A non-admin
// scope restricts rows to a single owner; an admin scope passes everything.
// In SQL it always renders as ($n OR user_id = $m), so handlers never branch
// on the requester's role themselves.
type Scope struct {
	UserID uuid.UUID
	Admin  bool
}

// ScopeFor derives the scope of the requesting user.
func ScopeFor(u *model.User) Scope {
	return Scope{UserID: u.ID, Admin: u.IsAdmin()}
}

// Narrow returns a scope limited to the given owner. Used when an admin
// filters a list query by an explicit target user.
func (s Scope) Narrow(userID uuid.UUID) Scope {
	return Scope{UserID: userID, Admin: false}
}
