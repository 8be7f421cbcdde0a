package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"timbrapp.com/timbrapp/attendance/auth"
	"timbrapp.com/timbrapp/attendance/core"
	"timbrapp.com/timbrapp/attendance/model"
	"timbrapp.com/timbrapp/web/common"
)

// ListEmployees returns every employee; ?active=true narrows to the ones
// allowed to clock in (the kiosk's login picker).
func (h *Handler) ListEmployees(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.Query("active"))

	employees, err := h.Store.Employees(c.Request.Context(), activeOnly)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(employees))
}

type EmployeeCreateDTO struct {
	Name     string `json:"name" binding:"required,min=2"`
	Password string `json:"password" binding:"required,min=4"`
}

func (h *Handler) CreateEmployee(c *gin.Context) {
	var body EmployeeCreateDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	hash, err := auth.HashPassword(body.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	emp := &model.Employee{
		Name:         body.Name,
		Active:       true,
		PasswordHash: hash,
	}
	if err := h.Store.CreateEmployee(c.Request.Context(), emp); err != nil {
		h.respondError(c, err)
		return
	}

	h.Log.Infow("employee created", "employee", emp.ID, "name", emp.Name)
	c.JSON(http.StatusOK, common.NewSuccessResponse(emp))
}

type EmployeeUpdateDTO struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=2"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=4"`
	Active   *bool   `json:"active,omitempty"`
}

// UpdateEmployee renames, resets the password, or toggles the active flag.
// Deactivation keeps all historical entries.
func (h *Handler) UpdateEmployee(c *gin.Context) {
	id := c.Param("id")

	var body EmployeeUpdateDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	emp, err := h.Store.EmployeeByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if emp == nil {
		h.respondError(c, core.ErrNotFound)
		return
	}

	if body.Name != nil {
		emp.Name = *body.Name
	}
	if body.Active != nil {
		emp.Active = *body.Active
	}
	if body.Password != nil {
		hash, err := auth.HashPassword(*body.Password)
		if err != nil {
			h.respondError(c, err)
			return
		}
		emp.PasswordHash = hash
	}

	if err := h.Store.UpdateEmployee(c.Request.Context(), emp); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(emp))
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")

	if err := h.Store.DeleteEmployee(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	h.Log.Infow("employee deleted", "employee", id)
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}
