package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/chandru-wp/portfolio-server/internal/models"
	"github.com/chandru-wp/portfolio-server/internal/repositories"
	"github.com/chandru-wp/portfolio-server/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GET /api/skills
func GetSkills(w http.ResponseWriter, r *http.Request) {
	groups, err := cached("skills", func() ([]models.SkillGroup, error) {
		groups := make([]models.SkillGroup, 0)
		err := repositories.DB.
			Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
			Find(&groups).Error
		return groups, err
	})
	if err != nil {
		utils.ErrorDetails(w, http.StatusInternalServerError, "Error fetching skills", err)
		return
	}
	utils.JSON(w, http.StatusOK, groups)
}

// POST /api/skills — accepts a single group or an array for bulk seeding.
func CreateSkills(w http.ResponseWriter, r *http.Request) {
	groups, err := decodeOneOrMany[models.SkillGroup](r.Body)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := repositories.DB.Create(&groups).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error creating skills")
		return
	}

	invalidate("skills")
	utils.JSON(w, http.StatusCreated, map[string]int{"count": len(groups)})
}

// PUT /api/skills/{id}
func UpdateSkillGroup(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var group models.SkillGroup
	err := repositories.DB.First(&group, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(w, http.StatusNotFound, "Skill group not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating skill")
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&group); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}
	group.ID = id

	if err := repositories.DB.Save(&group).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating skill")
		return
	}

	invalidate("skills")
	utils.JSON(w, http.StatusOK, group)
}

// DELETE /api/skills/{id}
func DeleteSkillGroup(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var group models.SkillGroup
	err := repositories.DB.First(&group, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(w, http.StatusNotFound, "Skill group not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting skill")
		return
	}

	if err := repositories.DB.Delete(&group).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting skill")
		return
	}

	invalidate("skills")
	utils.JSON(w, http.StatusOK, group)
}

// decodeOneOrMany reads a JSON body that may be either a single object or
// an array of objects, and always returns a slice.
func decodeOneOrMany[T any](body io.Reader) ([]T, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var many []T
		if err := json.Unmarshal(raw, &many); err != nil {
			return nil, err
		}
		if len(many) == 0 {
			return nil, errors.New("empty array")
		}
		return many, nil
	}

	var one T
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, err
	}
	return []T{one}, nil
}
