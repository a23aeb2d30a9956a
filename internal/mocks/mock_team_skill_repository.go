package mocks

import (
	"context"

	"github.com/Jong-Youl/LINK/domain"
)

// MockTeamSkillRepository implements domain.TeamSkillRepository for testing
type MockTeamSkillRepository struct {
	FindTeamFunc     func(ctx context.Context, teamID uint) (*domain.Team, error)
	LinkFunc         func(ctx context.Context, teamID, skillID uint) error
	UnlinkFunc       func(ctx context.Context, teamID, skillID uint) error
	SkillsByTeamFunc func(ctx context.Context, teamID uint) ([]domain.Skill, error)
}

func NewMockTeamSkillRepository() *MockTeamSkillRepository {
	return &MockTeamSkillRepository{}
}

func (m *MockTeamSkillRepository) FindTeam(ctx context.Context, teamID uint) (*domain.Team, error) {
	if m.FindTeamFunc != nil {
		return m.FindTeamFunc(ctx, teamID)
	}
	return &domain.Team{ID: teamID, Name: "backend"}, nil
}

func (m *MockTeamSkillRepository) Link(ctx context.Context, teamID, skillID uint) error {
	if m.LinkFunc != nil {
		return m.LinkFunc(ctx, teamID, skillID)
	}
	return nil
}

func (m *MockTeamSkillRepository) Unlink(ctx context.Context, teamID, skillID uint) error {
	if m.UnlinkFunc != nil {
		return m.UnlinkFunc(ctx, teamID, skillID)
	}
	return nil
}

func (m *MockTeamSkillRepository) SkillsByTeam(ctx context.Context, teamID uint) ([]domain.Skill, error) {
	if m.SkillsByTeamFunc != nil {
		return m.SkillsByTeamFunc(ctx, teamID)
	}
	return nil, nil
}
