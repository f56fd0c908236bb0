package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"go.uber.org/zap"
)

// Requests are matched as (role, method, path) where path has the endpoint
// prefix stripped. Every identity role inherits "authenticated".
const modelText = `
[request_definition]
r = sub, act, obj

[policy_definition]
p = sub, act, obj

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && regexMatch(r.act, p.act) && keyMatch2(r.obj, p.obj)
`

const (
	RoleAuthenticated = "authenticated"

	actRead      = "^GET$"
	actReadWrite = "^(GET|POST)$"
	actUpdate    = "^PUT$"
	actAny       = "^(GET|POST|PUT|DELETE)$"
)

var policies = [][]string{
	{RoleAuthenticated, actRead, "/user"},
	{RoleAuthenticated, actReadWrite, "/patient"},
	{RoleAuthenticated, actRead, "/doctor"},
	{RoleAuthenticated, actRead, "/doctor/:id"},
	{RoleAuthenticated, actReadWrite, "/appointment"},
	{"doctor", actUpdate, "/appointment/:id"},
	{"admin", actUpdate, "/appointment/:id"},
	{RoleAuthenticated, actRead, "/services"},
	{RoleAuthenticated, actRead, "/services/:id"},
	{RoleAuthenticated, actRead, "/payment"},
	{RoleAuthenticated, actReadWrite, "/payment/*"},
	{RoleAuthenticated, actReadWrite, "/disease/*"},
	{"admin", actAny, "/admin/*"},
}

var groupings = [][]string{
	{"user", RoleAuthenticated},
	{"patient", RoleAuthenticated},
	{"doctor", RoleAuthenticated},
	{"admin", RoleAuthenticated},
}

func NewEnforcer(logger *zap.Logger) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if _, err := enforcer.AddPolicies(policies); err != nil {
		return nil, err
	}
	if _, err := enforcer.AddGroupingPolicies(groupings); err != nil {
		return nil, err
	}

	logger.Info("Successfully loaded RBAC policies",
		zap.Int("policies", len(policies)),
		zap.Int("groupings", len(groupings)),
	)
	return enforcer, nil
}
