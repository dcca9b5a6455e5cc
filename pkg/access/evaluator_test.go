package access

import (
	"errors"
	"testing"

	"bizhub-be/internal/entity"

	"github.com/google/uuid"
)

var (
	tenant1 = uuid.New()
	tenant2 = uuid.New()
	owner   = uuid.New()
	sharee  = uuid.New()
	other   = uuid.New()
)

func testDoc() *entity.Document {
	return &entity.Document{
		Id:         uuid.New(),
		CompanyId:  tenant1,
		OwnerId:    owner,
		SharedWith: []uuid.UUID{sharee},
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		principal  entity.Principal
		wantAllow  bool
		wantReason string
	}{
		{
			name:       "owner allowed",
			principal:  entity.Principal{UserId: owner, CompanyId: tenant1, Role: entity.UserRoleUser},
			wantAllow:  true,
			wantReason: ReasonOwner,
		},
		{
			name:       "shared user allowed",
			principal:  entity.Principal{UserId: sharee, CompanyId: tenant1, Role: entity.UserRoleUser},
			wantAllow:  true,
			wantReason: ReasonShared,
		},
		{
			name:       "same tenant plain user denied",
			principal:  entity.Principal{UserId: other, CompanyId: tenant1, Role: entity.UserRoleUser},
			wantAllow:  false,
			wantReason: ReasonForbidden,
		},
		{
			name:       "same tenant admin allowed",
			principal:  entity.Principal{UserId: other, CompanyId: tenant1, Role: entity.UserRoleAdmin},
			wantAllow:  true,
			wantReason: ReasonAdminOverride,
		},
		{
			name:       "same tenant super admin allowed",
			principal:  entity.Principal{UserId: other, CompanyId: tenant1, Role: entity.UserRoleSuperAdmin},
			wantAllow:  true,
			wantReason: ReasonAdminOverride,
		},
		{
			name:       "cross tenant super admin denied",
			principal:  entity.Principal{UserId: uuid.New(), CompanyId: tenant2, Role: entity.UserRoleSuperAdmin},
			wantAllow:  false,
			wantReason: ReasonTenantMismatch,
		},
		{
			name:       "cross tenant user denied",
			principal:  entity.Principal{UserId: uuid.New(), CompanyId: tenant2, Role: entity.UserRoleUser},
			wantAllow:  false,
			wantReason: ReasonTenantMismatch,
		},
	}

	ev := NewEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ev.Evaluate(tt.principal, testDoc())
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if got.Allow != tt.wantAllow {
				t.Errorf("Allow = %v, want %v", got.Allow, tt.wantAllow)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
		})
	}
}

// Sharing never bypasses the tenant boundary.
func TestEvaluateCrossTenantShareDenied(t *testing.T) {
	foreign := entity.Principal{UserId: uuid.New(), CompanyId: tenant2, Role: entity.UserRoleUser}
	doc := testDoc()
	doc.SharedWith = append(doc.SharedWith, foreign.UserId)

	got, err := NewEvaluator().Evaluate(foreign, doc)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if got.Allow {
		t.Fatal("cross-tenant share must be denied")
	}
	if got.Reason != ReasonTenantMismatch {
		t.Errorf("Reason = %q, want %q", got.Reason, ReasonTenantMismatch)
	}
}

func TestEvaluateInvalidArgument(t *testing.T) {
	ev := NewEvaluator()

	if _, err := ev.Evaluate(entity.Principal{}, testDoc()); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("empty principal: err = %v, want ErrInvalidArgument", err)
	}

	p := entity.Principal{UserId: owner, CompanyId: tenant1, Role: entity.UserRoleUser}
	if _, err := ev.Evaluate(p, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil document: err = %v, want ErrInvalidArgument", err)
	}

	doc := testDoc()
	doc.CompanyId = uuid.Nil
	if _, err := ev.Evaluate(p, doc); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("document without tenant: err = %v, want ErrInvalidArgument", err)
	}
}
