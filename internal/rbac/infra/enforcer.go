package infra

import (
	_ "embed"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// defaultModel is the domain scoped RBAC model. A "manage" grant implies
// every other action on the same resource.
//
//go:embed model.conf
var defaultModel string

// NewEnforcer loads the model from modelPath, or the embedded model when
// modelPath is empty.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	if modelPath != "" {
		return casbin.NewEnforcer(modelPath)
	}
	m, err := model.NewModelFromString(defaultModel)
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m)
}
