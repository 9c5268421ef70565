package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chandru-wp/portfolio-server/internal/models"
	"github.com/chandru-wp/portfolio-server/internal/repositories"
	"github.com/chandru-wp/portfolio-server/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// POST /api/register
func Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Username == "" || input.Password == "" || input.Role == "" {
		utils.Error(w, http.StatusBadRequest, "All fields required")
		return
	}

	var existing models.User
	err := repositories.DB.Where("username = ?", input.Username).First(&existing).Error
	switch {
	case err == nil:
		utils.Error(w, http.StatusConflict, "User already exists")
		return
	case !errors.Is(err, gorm.ErrRecordNotFound):
		utils.Error(w, http.StatusInternalServerError, "Server error: "+err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		Username: input.Username,
		Password: string(hash),
		Role:     input.Role,
	}
	if err := repositories.DB.Create(&user).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Server error: "+err.Error())
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]any{
		"message": "Registered successfully",
		"user":    user,
	})
}

// POST /api/login
//
// An unknown username and a wrong password are deliberately distinguishable
// (404 vs 400); the frontend depends on it.
func Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Username == "" || input.Password == "" {
		utils.Error(w, http.StatusBadRequest, "Username and password required")
		return
	}

	var user models.User
	err := repositories.DB.Where("username = ?", input.Username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Server error: "+err.Error())
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		utils.Error(w, http.StatusBadRequest, "Incorrect password")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{
		"message":  "Login successful",
		"username": user.Username,
		"role":     user.Role,
	})
}

// PUT /api/change-role/{id} — no authorization check is performed here.
func ChangeRole(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Role == "" {
		utils.Error(w, http.StatusBadRequest, "Role required")
		return
	}

	id := r.PathValue("id")
	var user models.User
	err := repositories.DB.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating role")
		return
	}

	user.Role = input.Role
	if err := repositories.DB.Save(&user).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating role")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "Role updated",
		"updated": user,
	})
}
