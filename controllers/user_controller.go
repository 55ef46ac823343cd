package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/zmrishh/regret-note/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserController handles registration and per-user entry listings.
type UserController struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewUserController creates a UserController.
func NewUserController(db *gorm.DB, logger *zap.SugaredLogger) *UserController {
	return &UserController{db: db, logger: logger}
}

// CreateUser handles POST /api/users. Validation order is fixed: missing
// fields first, then username uniqueness, then email uniqueness, so callers
// see a stable error message for each failure.
func (uc *UserController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "must include username, email and password fields"})
		return
	}
	if !req.HasRequiredFields() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "must include username, email and password fields"})
		return
	}

	var existing models.User
	if err := uc.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please use a different username"})
		return
	}
	if err := uc.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please use a different email address"})
		return
	}

	user := models.User{Username: req.Username, Email: req.Email}
	if err := user.SetPassword(req.Password); err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	if err := uc.db.Create(&user).Error; err != nil {
		uc.logger.Errorw("failed to create user", "error", err, "username", req.Username)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user.ToRecord())
}

// GetUserEntries handles GET /api/users/:id/entries. Entries come back
// newest first.
func (uc *UserController) GetUserEntries(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	var user models.User
	if err := uc.db.First(&user, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			uc.logger.Errorw("failed to fetch user", "error", err, "id", id)
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	var entries []models.Entry
	if err := uc.db.Where("user_id = ?", user.ID).Order("created_at desc").Find(&entries).Error; err != nil {
		uc.logger.Errorw("failed to list user entries", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list entries"})
		return
	}

	records := make([]map[string]interface{}, 0, len(entries))
	for i := range entries {
		records = append(records, entries[i].ToRecord())
	}
	c.JSON(http.StatusOK, records)
}
