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

// GET /api/portfolio
// ListProjects godoc
// @Summary List portfolio projects
// @Description Returns all projects, most recently created first.
// @Tags Portfolio
// @Produce json
// @Success 200 {array} models.Portfolio
// @Failure 500 {object} map[string]string
// @Router /api/portfolio [get]
func ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := cached("portfolio", func() ([]models.Portfolio, error) {
		projects := make([]models.Portfolio, 0)
		err := repositories.DB.Order("created_at desc").Find(&projects).Error
		return projects, err
	})
	if err != nil {
		utils.ErrorDetails(w, http.StatusInternalServerError, "Error fetching portfolio", err)
		return
	}
	utils.JSON(w, http.StatusOK, projects)
}

// GET /api/portfolio/{id}
// GetProject godoc
// @Summary Get a single project
// @Tags Portfolio
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.Portfolio
// @Failure 404 {object} map[string]string
// @Router /api/portfolio/{id} [get]
func GetProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var project models.Portfolio
	err := repositories.DB.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		utils.ErrorDetails(w, http.StatusInternalServerError, "Error fetching portfolio", err)
		return
	}

	utils.JSON(w, http.StatusOK, project)
}

// POST /api/portfolio
// CreateProject godoc
// @Summary Create a project
// @Tags Portfolio
// @Accept json
// @Produce json
// @Param project body models.Portfolio true "Project"
// @Success 201 {object} models.Portfolio
// @Failure 400 {object} map[string]string
// @Router /api/portfolio [post]
func CreateProject(w http.ResponseWriter, r *http.Request) {
	var project models.Portfolio
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := repositories.DB.Create(&project).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error saving portfolio")
		return
	}

	invalidate("portfolio")
	utils.JSON(w, http.StatusCreated, project)
}

// PUT /api/portfolio/{id}
func UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var project models.Portfolio
	err := repositories.DB.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating portfolio")
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}
	project.ID = id

	if err := repositories.DB.Save(&project).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating portfolio")
		return
	}

	invalidate("portfolio")
	utils.JSON(w, http.StatusOK, project)
}

// DELETE /api/portfolio/{id}
func DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var project models.Portfolio
	err := repositories.DB.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting portfolio")
		return
	}

	if err := repositories.DB.Delete(&project).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting portfolio")
		return
	}

	invalidate("portfolio")
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Portfolio deleted"})
}
