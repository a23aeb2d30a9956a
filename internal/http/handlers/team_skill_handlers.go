package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Jong-Youl/LINK/domain"
)

// TeamSkillHandlers manages team-skill association rows
type TeamSkillHandlers struct {
	repo domain.TeamSkillRepository
}

// NewTeamSkillHandlers creates new team-skill handlers
func NewTeamSkillHandlers(repo domain.TeamSkillRepository) *TeamSkillHandlers {
	return &TeamSkillHandlers{repo: repo}
}

// LinkRequest represents a skill link request
type LinkRequest struct {
	SkillID uint `json:"skill_id" binding:"required"`
}

// Link attaches a skill to a team
func (h *TeamSkillHandlers) Link(c *gin.Context) {
	teamID, err := pathID(c, "team_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}

	var req LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.repo.FindTeam(c.Request.Context(), teamID); err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to link skill"})
		return
	}

	if err := h.repo.Link(c.Request.Context(), teamID, req.SkillID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to link skill"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Skill linked"})
}

// Unlink removes a skill from a team
func (h *TeamSkillHandlers) Unlink(c *gin.Context) {
	teamID, err := pathID(c, "team_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}
	skillID, err := pathID(c, "skill_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skill id"})
		return
	}

	if err := h.repo.Unlink(c.Request.Context(), teamID, skillID); err != nil {
		if errors.Is(err, domain.ErrTeamSkillNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlink skill"})
		return
	}

	c.Status(http.StatusNoContent)
}

// List returns the skills linked to a team
func (h *TeamSkillHandlers) List(c *gin.Context) {
	teamID, err := pathID(c, "team_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}

	team, err := h.repo.FindTeam(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list skills"})
		return
	}

	skills, err := h.repo.SkillsByTeam(c.Request.Context(), teamID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list skills"})
		return
	}

	out := make([]gin.H, 0, len(skills))
	for _, s := range skills {
		out = append(out, gin.H{"id": s.ID, "name": s.Name})
	}
	c.JSON(http.StatusOK, gin.H{"team": gin.H{"id": team.ID, "name": team.Name}, "skills": out})
}

func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(id), err
}
