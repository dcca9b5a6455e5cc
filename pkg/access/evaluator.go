// Package access decides whether a principal may read a document.
package access

import (
	"errors"
	"fmt"

	"bizhub-be/internal/entity"

	"github.com/google/uuid"
)

// ErrInvalidArgument signals a caller contract violation (malformed principal
// or document). It is never used to express a denial.
var ErrInvalidArgument = errors.New("access: invalid argument")

// Decision reasons, in rule order.
const (
	ReasonOwner          = "owner"
	ReasonTenantMismatch = "tenant-mismatch"
	ReasonShared         = "shared"
	ReasonAdminOverride  = "admin-override"
	ReasonForbidden      = "forbidden"
)

// Decision is the pure output of Evaluate. It is never persisted.
type Decision struct {
	Allow  bool
	Reason string
}

// Evaluator decides document read access. It is stateless and safe for
// arbitrary concurrent use.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate applies the ordered decision rules, first match wins:
//
//  1. owner            -> allow
//  2. tenant mismatch  -> deny (never recoverable by sharing or role)
//  3. shared with user -> allow
//  4. admin role       -> allow
//  5. otherwise        -> deny
//
// The tenant check outranks sharing and role so that tenant isolation is
// absolute, while explicit sharing stays at least as permissive as the admin
// default inside the tenant.
func (e *Evaluator) Evaluate(principal entity.Principal, doc *entity.Document) (Decision, error) {
	if doc == nil {
		return Decision{}, fmt.Errorf("%w: nil document", ErrInvalidArgument)
	}
	if principal.UserId == uuid.Nil || principal.CompanyId == uuid.Nil {
		return Decision{}, fmt.Errorf("%w: incomplete principal", ErrInvalidArgument)
	}
	if doc.Id == uuid.Nil || doc.CompanyId == uuid.Nil || doc.OwnerId == uuid.Nil {
		return Decision{}, fmt.Errorf("%w: incomplete document", ErrInvalidArgument)
	}

	if principal.UserId == doc.OwnerId {
		return Decision{Allow: true, Reason: ReasonOwner}, nil
	}
	if principal.CompanyId != doc.CompanyId {
		return Decision{Allow: false, Reason: ReasonTenantMismatch}, nil
	}
	if doc.IsSharedWith(principal.UserId) {
		return Decision{Allow: true, Reason: ReasonShared}, nil
	}
	if principal.IsAdmin() {
		return Decision{Allow: true, Reason: ReasonAdminOverride}, nil
	}
	return Decision{Allow: false, Reason: ReasonForbidden}, nil
}
