package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"timbrapp.com/timbrapp/observability"
	"timbrapp.com/timbrapp/security"
	"timbrapp.com/timbrapp/web/common"
	"timbrapp.com/timbrapp/web/middlewares"
)

type EmployeeLoginDTO struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

func (h *Handler) EmployeeLogin(c *gin.Context) {
	var body EmployeeLoginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	emp, err := h.Auth.AuthenticateEmployee(c.Request.Context(), body.EmployeeID, body.Password)
	if err != nil {
		observability.RecordAuthFailure()
		h.respondError(c, err)
		return
	}

	token, err := security.CreateSessionToken(
		h.Secret, security.RoleEmployee, emp.ID, emp.Name,
		time.Now(), h.Cfg.EmployeeSessionTimeout,
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"token":    token,
		"employee": emp,
	}))
}

type AdminLoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) AdminLogin(c *gin.Context) {
	var body AdminLoginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	admin, err := h.Auth.AuthenticateAdmin(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		observability.RecordAuthFailure()
		h.respondError(c, err)
		return
	}

	token, err := security.CreateSessionToken(
		h.Secret, security.RoleAdmin, admin.ID, admin.Username,
		time.Now(), h.Cfg.AdminSessionTimeout,
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"token": token,
		"admin": admin,
	}))
}

type AdminPasswordDTO struct {
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

func (h *Handler) ChangeAdminPassword(c *gin.Context) {
	var body AdminPasswordDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	claims := middlewares.SessionFrom(c)
	if err := h.Auth.ChangeAdminPassword(c.Request.Context(), claims.Subject, body.NewPassword); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}
