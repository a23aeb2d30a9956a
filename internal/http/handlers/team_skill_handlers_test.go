package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Jong-Youl/LINK/domain"
	"github.com/Jong-Youl/LINK/internal/mocks"
)

func setupTeamSkillTest(repo *mocks.MockTeamSkillRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTeamSkillHandlers(repo)
	r := gin.New()
	r.POST("/api/teams/:team_id/skills", h.Link)
	r.GET("/api/teams/:team_id/skills", h.List)
	r.DELETE("/api/teams/:team_id/skills/:skill_id", h.Unlink)
	return r
}

func TestTeamSkillHandlers_Link(t *testing.T) {
	t.Run("linked", func(t *testing.T) {
		repo := mocks.NewMockTeamSkillRepository()
		var gotTeam, gotSkill uint
		repo.LinkFunc = func(ctx context.Context, teamID, skillID uint) error {
			gotTeam, gotSkill = teamID, skillID
			return nil
		}
		r := setupTeamSkillTest(repo)

		w := postJSON(t, r, "/api/teams/3/skills", map[string]uint{"skill_id": 7})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(3), gotTeam)
		assert.Equal(t, uint(7), gotSkill)
	})

	t.Run("unknown team", func(t *testing.T) {
		repo := mocks.NewMockTeamSkillRepository()
		repo.FindTeamFunc = func(ctx context.Context, teamID uint) (*domain.Team, error) {
			return nil, domain.ErrTeamNotFound
		}
		repo.LinkFunc = func(ctx context.Context, teamID, skillID uint) error {
			t.Error("link must not be called for an unknown team")
			return nil
		}
		r := setupTeamSkillTest(repo)

		w := postJSON(t, r, "/api/teams/404/skills", map[string]uint{"skill_id": 7})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad team id", func(t *testing.T) {
		r := setupTeamSkillTest(mocks.NewMockTeamSkillRepository())

		w := postJSON(t, r, "/api/teams/abc/skills", map[string]uint{"skill_id": 7})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTeamSkillHandlers_List(t *testing.T) {
	t.Run("skills with team", func(t *testing.T) {
		repo := mocks.NewMockTeamSkillRepository()
		repo.SkillsByTeamFunc = func(ctx context.Context, teamID uint) ([]domain.Skill, error) {
			return []domain.Skill{{ID: 1, Name: "go"}, {ID: 2, Name: "redis"}}, nil
		}
		r := setupTeamSkillTest(repo)

		w := getJSON(t, r, "/api/teams/3/skills", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"go"`)
		assert.Contains(t, w.Body.String(), `"backend"`)
	})

	t.Run("unknown team", func(t *testing.T) {
		repo := mocks.NewMockTeamSkillRepository()
		repo.FindTeamFunc = func(ctx context.Context, teamID uint) (*domain.Team, error) {
			return nil, domain.ErrTeamNotFound
		}
		r := setupTeamSkillTest(repo)

		w := getJSON(t, r, "/api/teams/404/skills", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTeamSkillHandlers_Unlink(t *testing.T) {
	t.Run("unlinked", func(t *testing.T) {
		repo := mocks.NewMockTeamSkillRepository()
		r := setupTeamSkillTest(repo)

		req := httptest.NewRequest(http.MethodDelete, "/api/teams/3/skills/7", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("link absent", func(t *testing.T) {
		repo := mocks.NewMockTeamSkillRepository()
		repo.UnlinkFunc = func(ctx context.Context, teamID, skillID uint) error {
			return domain.ErrTeamSkillNotFound
		}
		r := setupTeamSkillTest(repo)

		req := httptest.NewRequest(http.MethodDelete, "/api/teams/3/skills/7", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
