package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"users-api/internal/application"
	"users-api/internal/domain/entity"
)

// UserHandler binds validated requests to the user use cases. Failures are
// attached to the context and rendered by the ErrorHandler middleware.
type UserHandler struct {
	Create *application.CreateUser
	Get    *application.GetUserByID
	List   *application.ListUsers
	Update *application.UpdateUser
	Delete *application.DeleteUserByID
}

func NewUserHandler(
	create *application.CreateUser,
	get *application.GetUserByID,
	list *application.ListUsers,
	update *application.UpdateUser,
	del *application.DeleteUserByID,
) *UserHandler {
	return &UserHandler{Create: create, Get: get, List: list, Update: update, Delete: del}
}

// Name length is checked on the trimmed value; "  a  " is as short as "a".
type createUserRequest struct {
	Name  string `json:"name" binding:"required,trimmed_min=3"`
	Email string `json:"email" binding:"required,email"`
}

// omitnil keeps absent fields optional while still rejecting present but
// invalid values, including the empty string.
type updateUserRequest struct {
	Name  *string `json:"name" binding:"omitnil,trimmed_min=3"`
	Email *string `json:"email" binding:"omitnil,email"`
}

type userIDParam struct {
	ID string `uri:"id" json:"id" binding:"required,uuid"`
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}

	res, err := h.Create.Execute(c.Request.Context(), application.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	res, err := h.List.Execute(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetUserByID handles GET /users/:id.
func (h *UserHandler) GetUserByID(c *gin.Context) {
	var params userIDParam
	if err := c.ShouldBindUri(&params); err != nil {
		_ = c.Error(err)
		return
	}

	res, err := h.Get.Execute(c.Request.Context(), params.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateUser handles PUT /users/:id.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var params userIDParam
	if err := c.ShouldBindUri(&params); err != nil {
		_ = c.Error(err)
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}

	// Normalize at the edge so the use case compares canonical values.
	in := application.UpdateUserInput{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		in.Name = &name
	}
	if req.Email != nil {
		email := entity.NormalizeEmail(*req.Email)
		in.Email = &email
	}

	res, err := h.Update.Execute(c.Request.Context(), params.ID, in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteUser handles DELETE /users/:id.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	var params userIDParam
	if err := c.ShouldBindUri(&params); err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.Delete.Execute(c.Request.Context(), params.ID); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
