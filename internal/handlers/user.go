package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/mkovalev/shop-backend/internal/models"
)

type UserHandler struct {
	DB *gorm.DB
}

func (h *UserHandler) GetUsers(c echo.Context) error {
	// initialized so an empty table serializes as [] rather than null
	users := make([]models.User, 0)
	if err := h.DB.Select("id", "email", "role").Find(&users).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUser reports success whether or not a row matched the id. Unlike the
// product routes, the affected-row count is not inspected here.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}

	err := h.DB.Model(&models.User{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]any{"email": req.Email, "role": req.Role}).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "User updated successfully"})
}

// DeleteUser, like UpdateUser, never answers 404.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.DB.Where("id = ?", c.Param("id")).Delete(&models.User{}).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted successfully"})
}
