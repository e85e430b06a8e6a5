package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healthpulse/internal/models/request_models"
	"healthpulse/internal/services"
	"healthpulse/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{accountService: accountService}
}

// Register creates an account with its health profile.
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"account_id": accountID}, "Registration successful! Please login.")
}

// Login authenticates and returns a bearer token.
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}

// accountIDFrom reads the authenticated account id set by the JWT middleware.
func accountIDFrom(c *gin.Context) (uint, bool) {
	v, ok := c.Get("account_id")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
