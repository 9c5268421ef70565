package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chandru-wp/portfolio-server/internal/models"
	"github.com/chandru-wp/portfolio-server/internal/repositories"
	"github.com/chandru-wp/portfolio-server/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GET /api/experience
func GetExperience(w http.ResponseWriter, r *http.Request) {
	entries, err := cached("experience", func() ([]models.Experience, error) {
		entries := make([]models.Experience, 0)
		err := repositories.DB.
			Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
			Find(&entries).Error
		return entries, err
	})
	if err != nil {
		utils.ErrorDetails(w, http.StatusInternalServerError, "Error fetching experience", err)
		return
	}
	utils.JSON(w, http.StatusOK, entries)
}

// POST /api/experience
func CreateExperience(w http.ResponseWriter, r *http.Request) {
	entries, err := decodeOneOrMany[models.Experience](r.Body)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := repositories.DB.Create(&entries).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error creating experience")
		return
	}

	invalidate("experience")
	utils.JSON(w, http.StatusCreated, map[string]int{"count": len(entries)})
}

// PUT /api/experience/{id}
func UpdateExperience(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var entry models.Experience
	err := repositories.DB.First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(w, http.StatusNotFound, "Experience not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating experience")
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}
	entry.ID = id

	if err := repositories.DB.Save(&entry).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating experience")
		return
	}

	invalidate("experience")
	utils.JSON(w, http.StatusOK, entry)
}

// DELETE /api/experience/{id}
func DeleteExperience(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var entry models.Experience
	err := repositories.DB.First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(w, http.StatusNotFound, "Experience not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting experience")
		return
	}

	if err := repositories.DB.Delete(&entry).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting experience")
		return
	}

	invalidate("experience")
	utils.JSON(w, http.StatusOK, entry)
}
