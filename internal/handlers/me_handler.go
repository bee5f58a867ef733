package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/dto"
	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/shift-scheduler/internal/middleware"
)

type MeHandler struct {
	users user.Directory
}

func NewMeHandler(users user.Directory) *MeHandler {
	return &MeHandler{users: users}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Authentication required")
		return
	}

	u, err := h.users.FindByID(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.FromUser(u))
}
