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

// GET /api/education
func GetEducation(w http.ResponseWriter, r *http.Request) {
	entries, err := cached("education", func() ([]models.Education, error) {
		entries := make([]models.Education, 0)
		err := repositories.DB.
			Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
			Find(&entries).Error
		return entries, err
	})
	if err != nil {
		utils.ErrorDetails(w, http.StatusInternalServerError, "Error fetching education", err)
		return
	}
	utils.JSON(w, http.StatusOK, entries)
}

// POST /api/education
func CreateEducation(w http.ResponseWriter, r *http.Request) {
	entries, err := decodeOneOrMany[models.Education](r.Body)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := repositories.DB.Create(&entries).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error creating education")
		return
	}

	invalidate("education")
	utils.JSON(w, http.StatusCreated, map[string]int{"count": len(entries)})
}

// PUT /api/education/{id}
func UpdateEducation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var entry models.Education
	err := repositories.DB.First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(w, http.StatusNotFound, "Education not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating education")
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}
	entry.ID = id

	if err := repositories.DB.Save(&entry).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating education")
		return
	}

	invalidate("education")
	utils.JSON(w, http.StatusOK, entry)
}

// DELETE /api/education/{id}
func DeleteEducation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var entry models.Education
	err := repositories.DB.First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(w, http.StatusNotFound, "Education not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting education")
		return
	}

	if err := repositories.DB.Delete(&entry).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting education")
		return
	}

	invalidate("education")
	utils.JSON(w, http.StatusOK, entry)
}
