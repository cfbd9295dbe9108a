// Package access is the single authorization policy for ledger operations.
// Role checks live here instead of being repeated inline per handler.
package access

import (
	"errors"

	"github.com/ankit/temple-ledger-go/models"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("admin access required")
)

// Identity is the authenticated caller as established by token verification.
type Identity struct {
	Username string
	Role     string
}

type Operation string

const (
	OpList      Operation = "list"
	OpSummary   Operation = "summary"
	OpCreate    Operation = "create"
	OpUpdate    Operation = "update"
	OpReceipt   Operation = "receipt"
	OpAdminList Operation = "adminList"
	OpClear     Operation = "clear"
)

// Authorize decides whether an identity (nil when the caller is anonymous)
// may perform an operation. Ownership scoping for updates is enforced by the
// store, not here; this only gates by presence and role.
func Authorize(op Operation, id *Identity) error {
	switch op {
	case OpList, OpSummary:
		return nil
	case OpCreate, OpUpdate, OpReceipt:
		if id == nil {
			return ErrUnauthenticated
		}
		return nil
	case OpAdminList, OpClear:
		if id == nil {
			return ErrUnauthenticated
		}
		if id.Role != models.RoleAdmin {
			return ErrForbidden
		}
		return nil
	default:
		return ErrForbidden
	}
}
