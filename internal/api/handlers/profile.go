package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chandru-wp/portfolio-server/internal/models"
	"github.com/chandru-wp/portfolio-server/internal/repositories"
	"github.com/chandru-wp/portfolio-server/internal/utils"
	"gorm.io/gorm"
)

// The profile is a singleton by convention only: nothing stops POST from
// creating extra rows, so reads always take the most recent one.

// GET /api/profile
func GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := cached("profile", func() (*models.Profile, error) {
		var p models.Profile
		err := repositories.DB.Order("created_at desc").First(&p).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &p, nil
	})
	if err != nil {
		utils.ErrorDetails(w, http.StatusInternalServerError, "Error fetching profile", err)
		return
	}
	if profile == nil {
		utils.JSON(w, http.StatusOK, map[string]any{})
		return
	}
	utils.JSON(w, http.StatusOK, profile)
}

// POST /api/profile
func CreateProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := repositories.DB.Create(&profile).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error creating profile")
		return
	}

	invalidate("profile")
	utils.JSON(w, http.StatusCreated, profile)
}

// PUT /api/profile — updates the canonical profile, creating one if none exists.
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var existing models.Profile
	err := repositories.DB.Order("created_at desc").First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		var profile models.Profile
		if decErr := json.NewDecoder(r.Body).Decode(&profile); decErr != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid input")
			return
		}
		if createErr := repositories.DB.Create(&profile).Error; createErr != nil {
			utils.Error(w, http.StatusInternalServerError, "Error updating profile")
			return
		}
		invalidate("profile")
		utils.JSON(w, http.StatusCreated, profile)
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating profile")
		return
	}

	id := existing.ID
	if err := json.NewDecoder(r.Body).Decode(&existing); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}
	existing.ID = id

	if err := repositories.DB.Save(&existing).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating profile")
		return
	}

	invalidate("profile")
	utils.JSON(w, http.StatusOK, existing)
}

// PUT /api/profile/{id}
func UpdateProfileByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var profile models.Profile
	err := repositories.DB.First(&profile, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(w, http.StatusNotFound, "Profile not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating profile")
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}
	profile.ID = id // the path identifier wins over anything in the body

	if err := repositories.DB.Save(&profile).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating profile")
		return
	}

	invalidate("profile")
	utils.JSON(w, http.StatusOK, profile)
}
