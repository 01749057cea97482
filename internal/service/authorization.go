package service

import (
	"fmt"

	"shop-api/internal/model"

	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"
)

// Actions used by the route table.
const (
	ActionRead  = "read"
	ActionWrite = "write"
)

// rbacModel matches a request {role, resource, action} against the policy
// table; "*" as policy subject means any authenticated role.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = (r.sub == p.sub || p.sub == "*") && r.obj == p.obj && r.act == p.act
`

// policies encodes the two-tier access policy: every authenticated user
// may read, only admins may write products. Customers and orders carry
// no admin restriction; that asymmetry is deliberate and preserved here
// as explicit policy rows rather than generalized.
var policies = [][]string{
	{"*", "products", ActionRead},
	{model.RoleAdmin, "products", ActionWrite},
	{"*", "customers", ActionRead},
	{"*", "customers", ActionWrite},
	{"*", "orders", ActionRead},
	{"*", "orders", ActionWrite},
}

// AuthorizationService answers the single capability question: may this
// user perform this action on this resource.
type AuthorizationService struct {
	enforcer *casbin.Enforcer
}

// NewAuthorizationService builds the casbin enforcer with the static
// policy table.
func NewAuthorizationService() (*AuthorizationService, error) {
	m, err := casbinmodel.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RBAC model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize enforcer: %w", err)
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, fmt.Errorf("failed to add policy %v: %w", p, err)
		}
	}

	return &AuthorizationService{enforcer: enforcer}, nil
}

// CheckPermission returns whether the user may perform the action on the
// resource.
func (s *AuthorizationService) CheckPermission(user *model.User, resource, action string) (bool, error) {
	allowed, err := s.enforcer.Enforce(user.Role, resource, action)
	if err != nil {
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}
