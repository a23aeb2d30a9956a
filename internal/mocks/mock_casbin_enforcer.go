package mocks

import "github.com/Jong-Youl/LINK/domain"

// MockCasbinEnforcer implements domain.CasbinEnforcer for testing
type MockCasbinEnforcer struct {
	AddPolicyFunc    func(params ...interface{}) (bool, error)
	RemovePolicyFunc func(params ...interface{}) (bool, error)
	EnforceFunc      func(rvals ...interface{}) (bool, error)
	GetPolicyFunc    func() ([][]string, error)
	SavePolicyFunc   func() error
	policies         [][]string
}

var _ domain.CasbinEnforcer = (*MockCasbinEnforcer)(nil)

func NewMockCasbinEnforcer() *MockCasbinEnforcer {
	return &MockCasbinEnforcer{}
}

// AddPolicy appends to the internal policy list unless overridden
func (m *MockCasbinEnforcer) AddPolicy(params ...interface{}) (bool, error) {
	if m.AddPolicyFunc != nil {
		return m.AddPolicyFunc(params...)
	}
	policy := make([]string, 0, len(params))
	for _, p := range params {
		if s, ok := p.(string); ok {
			policy = append(policy, s)
		}
	}
	m.policies = append(m.policies, policy)
	return true, nil
}

// RemovePolicy removes a matching row from the internal policy list
func (m *MockCasbinEnforcer) RemovePolicy(params ...interface{}) (bool, error) {
	if m.RemovePolicyFunc != nil {
		return m.RemovePolicyFunc(params...)
	}
	for i, policy := range m.policies {
		if len(policy) != len(params) {
			continue
		}
		match := true
		for j, p := range params {
			if s, ok := p.(string); !ok || policy[j] != s {
				match = false
				break
			}
		}
		if match {
			m.policies = append(m.policies[:i], m.policies[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Enforce allows a request only when an exact policy row exists
func (m *MockCasbinEnforcer) Enforce(rvals ...interface{}) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(rvals...)
	}
	for _, policy := range m.policies {
		if len(policy) != len(rvals) {
			continue
		}
		match := true
		for j, v := range rvals {
			if s, ok := v.(string); !ok || policy[j] != s {
				match = false
				break
			}
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCasbinEnforcer) GetPolicy() ([][]string, error) {
	if m.GetPolicyFunc != nil {
		return m.GetPolicyFunc()
	}
	result := make([][]string, len(m.policies))
	for i, policy := range m.policies {
		result[i] = make([]string, len(policy))
		copy(result[i], policy)
	}
	return result, nil
}

func (m *MockCasbinEnforcer) SavePolicy() error {
	if m.SavePolicyFunc != nil {
		return m.SavePolicyFunc()
	}
	return nil
}
