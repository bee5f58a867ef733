package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shift-scheduler/internal/dto"
	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/shift-scheduler/internal/middleware"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
	ucShift "github.com/BruksfildServices01/shift-scheduler/internal/usecase/shift"
)

// ======================================================
// HANDLER
// ======================================================

type ShiftUseCases struct {
	List       *ucShift.ListShifts
	Get        *ucShift.GetShift
	ListByUser *ucShift.ListShiftsByUser
	Create     *ucShift.CreateShift
	CheckIn    *ucShift.CheckIn
	CheckOut   *ucShift.CheckOut
	Complete   *ucShift.CompleteShift
	Delete     *ucShift.DeleteShift
}

type ShiftHandler struct {
	uc ShiftUseCases
}

func NewShiftHandler(uc ShiftUseCases) *ShiftHandler {
	return &ShiftHandler{uc: uc}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateShiftRequest struct {
	Name      string `json:"name" binding:"required"`
	ShiftDate string `json:"shiftDate" binding:"required"`
	ShiftTime string `json:"shiftTime" binding:"required"`
	UserID    uint   `json:"userId" binding:"required"`
}

// ======================================================
// READ
// ======================================================

func (h *ShiftHandler) List(c *gin.Context) {
	shifts, err := h.uc.List.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.FromShifts(shifts))
}

func (h *ShiftHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	s, err := h.uc.Get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.FromShift(s))
}

func (h *ShiftHandler) ListByUser(c *gin.Context) {
	userID, err := parseID(c, "userId")
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	h.respondUserShifts(c, userID)
}

func (h *ShiftHandler) MyShifts(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Authentication required")
		return
	}
	h.respondUserShifts(c, actor.ID)
}

func (h *ShiftHandler) respondUserShifts(c *gin.Context, userID uint) {
	shifts, err := h.uc.ListByUser.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.FromShifts(shifts))
}

// ======================================================
// CREATE
// ======================================================

func (h *ShiftHandler) Create(c *gin.Context) {
	var req CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	date, err := parseShiftDate(req.ShiftDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_shift_date", "shiftDate must be YYYY-MM-DD")
		return
	}

	shiftTime, err := models.ParseShiftTime(req.ShiftTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_shift_time", "shiftTime must be one of MORNING, AFTERNOON, NIGHT")
		return
	}

	actor, _ := middleware.ActorFrom(c)

	s, err := h.uc.Create.Execute(c.Request.Context(), ucShift.CreateShiftInput{
		Name:      req.Name,
		ShiftDate: date,
		ShiftTime: shiftTime,
		UserID:    req.UserID,
		ActorID:   actor.ID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.FromShift(s))
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *ShiftHandler) CheckIn(c *gin.Context) {
	h.transition(c, h.uc.CheckIn.Execute)
}

func (h *ShiftHandler) CheckOut(c *gin.Context) {
	h.transition(c, h.uc.CheckOut.Execute)
}

func (h *ShiftHandler) Complete(c *gin.Context) {
	h.transition(c, h.uc.Complete.Execute)
}

func (h *ShiftHandler) Delete(c *gin.Context) {
	h.transition(c, h.uc.Delete.Execute)
}
