package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusguard/internal/application/user/usecases"
	"campusguard/internal/shared/logger"
	"campusguard/internal/shared/utils"
)

type RegisterRequest struct {
	FullName     string  `json:"full_name" binding:"required,max=255"`
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required,min=8"`
	Role         string  `json:"role" binding:"required"`
	RollNo       *string `json:"roll_no,omitempty"`
	DepartmentID *uint   `json:"department_id,omitempty"`
	Year         *int    `json:"year,omitempty"`
	PhoneNo      *string `json:"phone_no,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	registerUC usecases.RegisterExecutor
	loginUC    usecases.LoginExecutor
	logger     logger.Interface
}

func NewAuthHandler(registerUC usecases.RegisterExecutor, loginUC usecases.LoginExecutor) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		logger:     logger.NewLogger(),
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		FullName:     req.FullName,
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		RollNo:       req.RollNo,
		DepartmentID: req.DepartmentID,
		Year:         req.Year,
		PhoneNo:      req.PhoneNo,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Account created successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}
