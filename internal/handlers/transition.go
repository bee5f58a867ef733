package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/dto"
	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/shift-scheduler/internal/middleware"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

type shiftAction func(ctx context.Context, shiftID uint, actor user.Actor) (*models.Shift, error)

// transition runs an action on the shift named by :id as the authenticated user.
func (h *ShiftHandler) transition(c *gin.Context, action shiftAction) {
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

	s, err := action(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.FromShift(s))
}
