package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/mkovalev/shop-backend/internal/models"
)

type AuthHandler struct {
	DB *gorm.DB
}

// Login matches email and password by direct equality against the stored row
// and answers with the matched role. No session, token or cookie is issued;
// callers are trusted to act on the role themselves. That is a deliberate
// carry-over from the system this replaces, as is the plaintext comparison.
func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}

	var user models.User
	err := h.DB.Where("email = ? AND password = ?", req.Email, req.Password).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid email or password"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"role":    user.Role,
	})
}
