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

// GET /api/messages
// ListMessages godoc
// @Summary List contact messages
// @Tags Messages
// @Produce json
// @Success 200 {array} models.Message
// @Failure 500 {object} map[string]string
// @Router /api/messages [get]
func ListMessages(w http.ResponseWriter, r *http.Request) {
	messages := make([]models.Message, 0)
	if err := repositories.DB.Order("created_at desc").Find(&messages).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching messages")
		return
	}
	utils.JSON(w, http.StatusOK, messages)
}

// POST /api/messages
// CreateMessage godoc
// @Summary Submit a contact message
// @Tags Messages
// @Accept json
// @Produce json
// @Param message body models.Message true "Message"
// @Success 201 {object} models.Message
// @Failure 400 {object} map[string]string
// @Router /api/messages [post]
func CreateMessage(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Subject  string `json:"subject"`
		Message  string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Username == "" || input.Subject == "" || input.Message == "" {
		utils.Error(w, http.StatusBadRequest, "All fields required")
		return
	}

	message := models.Message{
		Username: input.Username,
		Subject:  input.Subject,
		Message:  input.Message,
	}
	if err := repositories.DB.Create(&message).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error creating message")
		return
	}

	utils.JSON(w, http.StatusCreated, message)
}

// PUT /api/messages/{id}/reply — fills the reply slot and marks the
// message as replied.
func ReplyMessage(w http.ResponseWriter, r *http.Request) {
	message, reply, ok := loadMessageWithReply(w, r)
	if !ok {
		return
	}

	message.Reply = &reply
	message.Replied = true

	if err := repositories.DB.Save(&message).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error replying to message")
		return
	}

	utils.JSON(w, http.StatusOK, message)
}

// PUT /api/messages/{id}/edit-reply — replaces the reply text, leaving the
// replied flag as it was.
func EditReply(w http.ResponseWriter, r *http.Request) {
	message, reply, ok := loadMessageWithReply(w, r)
	if !ok {
		return
	}

	message.Reply = &reply

	if err := repositories.DB.Save(&message).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error editing reply")
		return
	}

	utils.JSON(w, http.StatusOK, message)
}

// PUT /api/messages/{id}/delete-reply — clears the reply slot.
func DeleteReply(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var message models.Message
	err := repositories.DB.First(&message, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(w, http.StatusNotFound, "Message not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting reply")
		return
	}

	message.Reply = nil
	message.Replied = false

	if err := repositories.DB.Save(&message).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting reply")
		return
	}

	utils.JSON(w, http.StatusOK, message)
}

// DELETE /api/messages/{id}
func DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var message models.Message
	err := repositories.DB.First(&message, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(w, http.StatusNotFound, "Message not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting message")
		return
	}

	if err := repositories.DB.Delete(&message).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting message")
		return
	}

	utils.JSON(w, http.StatusOK, message)
}

// loadMessageWithReply fetches the message addressed by the path id and the
// non-empty reply text from the body, writing the error response itself
// when either is missing.
func loadMessageWithReply(w http.ResponseWriter, r *http.Request) (models.Message, string, bool) {
	var input struct {
		Reply string `json:"reply"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Reply == "" {
		utils.Error(w, http.StatusBadRequest, "Reply text required")
		return models.Message{}, "", false
	}

	id := r.PathValue("id")
	var message models.Message
	err := repositories.DB.First(&message, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(w, http.StatusNotFound, "Message not found")
		return models.Message{}, "", false
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching message")
		return models.Message{}, "", false
	}

	return message, input.Reply, true
}
