package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/dto"
	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/shift-scheduler/internal/middleware"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
	ucUser "github.com/BruksfildServices01/shift-scheduler/internal/usecase/user"
)

type UserUseCases struct {
	List   *ucUser.ListUsers
	Get    *ucUser.GetUser
	Update *ucUser.UpdateUser
	Delete *ucUser.DeleteUser
}

type UsersHandler struct {
	uc UserUseCases
}

func NewUsersHandler(uc UserUseCases) *UsersHandler {
	return &UsersHandler{uc: uc}
}

// UpdateUserRequest is a partial update; omitted fields keep their value.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"isActive"`
}

func (h *UsersHandler) List(c *gin.Context) {
	users, err := h.uc.List.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.FromUsers(users))
}

func (h *UsersHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	u, err := h.uc.Get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.FromUser(u))
}

func (h *UsersHandler) Update(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Authentication required")
		return
	}

	id, err := parseID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	changes := user.Changes{Name: req.Name, IsActive: req.IsActive}
	if req.Role != nil {
		role, err := models.ParseRole(*req.Role)
		if err != nil {
			httperr.BadRequest(c, "invalid_role", "role must be one of WORKER, MANAGER, ADMIN")
			return
		}
		changes.Role = &role
	}

	u, err := h.uc.Update.Execute(c.Request.Context(), id, changes, actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.FromUser(u))
}

func (h *UsersHandler) Delete(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Authentication required")
		return
	}

	id, err := parseID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	u, err := h.uc.Delete.Execute(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.FromUser(u))
}
