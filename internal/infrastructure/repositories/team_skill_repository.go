package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Jong-Youl/LINK/domain"
)

// TeamSkillRepositoryImpl implements domain.TeamSkillRepository using GORM.
// Links are explicit association rows, not a backdoor insert into a hidden
// join table.
type TeamSkillRepositoryImpl struct {
	db *gorm.DB
}

// DBTeam represents the database model for Team
type DBTeam struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:128"`
	CreatedAt time.Time
}

func (DBTeam) TableName() string { return "teams" }

// DBSkill represents the database model for Skill
type DBSkill struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:64"`
}

func (DBSkill) TableName() string { return "skills" }

// DBTeamSkill represents the team-skill association row
type DBTeamSkill struct {
	ID      uint `gorm:"primaryKey"`
	TeamID  uint `gorm:"uniqueIndex:idx_team_skill;index"`
	SkillID uint `gorm:"uniqueIndex:idx_team_skill"`
}

func (DBTeamSkill) TableName() string { return "team_skills" }

// NewTeamSkillRepository creates a new team-skill repository
func NewTeamSkillRepository(db *gorm.DB) domain.TeamSkillRepository {
	return &TeamSkillRepositoryImpl{db: db}
}

// FindTeam implements domain.TeamSkillRepository
func (r *TeamSkillRepositoryImpl) FindTeam(ctx context.Context, teamID uint) (*domain.Team, error) {
	var dbTeam DBTeam
	err := r.db.WithContext(ctx).First(&dbTeam, teamID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrTeamNotFound
	}
	if err != nil {
		return nil, err
	}
	return &domain.Team{ID: dbTeam.ID, Name: dbTeam.Name, CreatedAt: dbTeam.CreatedAt}, nil
}

// Link implements domain.TeamSkillRepository. Linking an already linked
// pair is a no-op.
func (r *TeamSkillRepositoryImpl) Link(ctx context.Context, teamID, skillID uint) error {
	row := &DBTeamSkill{TeamID: teamID, SkillID: skillID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row).Error
}

// Unlink implements domain.TeamSkillRepository
func (r *TeamSkillRepositoryImpl) Unlink(ctx context.Context, teamID, skillID uint) error {
	res := r.db.WithContext(ctx).
		Where("team_id = ? AND skill_id = ?", teamID, skillID).
		Delete(&DBTeamSkill{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTeamSkillNotFound
	}
	return nil
}

// SkillsByTeam implements domain.TeamSkillRepository
func (r *TeamSkillRepositoryImpl) SkillsByTeam(ctx context.Context, teamID uint) ([]domain.Skill, error) {
	var dbSkills []DBSkill
	err := r.db.WithContext(ctx).
		Joins("JOIN team_skills ON team_skills.skill_id = skills.id").
		Where("team_skills.team_id = ?", teamID).
		Find(&dbSkills).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	skills := make([]domain.Skill, 0, len(dbSkills))
	for _, s := range dbSkills {
		skills = append(skills, domain.Skill{ID: s.ID, Name: s.Name})
	}
	return skills, nil
}
