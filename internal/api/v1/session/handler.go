package session

import (
	"net/http"

	"promptcraft-backend/internal/services"
	"promptcraft-backend/internal/utils"
	"promptcraft-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VerifyPasswordInput struct {
	Password string `json:"password"`
}

// VerifyPasswordResponse is the wire shape the web client expects. Success
// is the only field the client gates on; the token authorizes subsequent
// API calls.
type VerifyPasswordResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// VerifyPassword godoc
// @Summary Verify the shared site password
// @Description Compares the supplied password against the configured secret and opens a session on success
// @Tags session
// @Accept  json
// @Produce  json
// @Param   input  body  VerifyPasswordInput  true  "Password"
// @Success 200 {object} VerifyPasswordResponse
// @Failure 400 {object} VerifyPasswordResponse
// @Failure 500 {object} VerifyPasswordResponse
// @Router /verify-password [post]
func VerifyPassword(c *gin.Context) {
	var input VerifyPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Password == "" {
		c.JSON(http.StatusBadRequest, VerifyPasswordResponse{
			Success: false,
			Message: "Password is required",
		})
		return
	}

	valid, err := services.VerifySitePassword(input.Password)
	if err != nil {
		logger.Log.Error("password verification failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, VerifyPasswordResponse{
			Success: false,
			Message: "An error occurred while verifying the password",
		})
		return
	}

	// A mismatch and a failed check look identical to the caller.
	if !valid {
		c.JSON(http.StatusOK, VerifyPasswordResponse{Success: false})
		return
	}

	token, err := services.StartSession()
	if err != nil {
		logger.Log.Error("failed to start session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, VerifyPasswordResponse{
			Success: false,
			Message: "An error occurred while verifying the password",
		})
		return
	}

	c.JSON(http.StatusOK, VerifyPasswordResponse{Success: true, Token: token})
}

// Logout godoc
// @Summary End the current session
// @Description Revokes the presented session token
// @Tags session
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /logout [post]
func Logout(c *gin.Context) {
	tokenString, err := utils.ExtractToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
		return
	}

	if err := services.EndSession(tokenString); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to end session"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged out successfully", nil))
}
