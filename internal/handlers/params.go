package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/timezone"
)

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, name string) (uint, error) {
	raw := strings.TrimSpace(c.Param(name))
	if raw == "" {
		return 0, httperr.ErrValidation(name+"_empty", name+" is empty")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, httperr.ErrValidation("invalid_"+name, name+" must be a positive integer")
	}
	return uint(id), nil
}

// parseShiftDate accepts YYYY-MM-DD, optionally followed by a time of day,
// and keeps only the calendar date as written.
func parseShiftDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len("2006-01-02") {
		if _, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
			s = s[:10]
		} else if t, err := time.Parse(time.RFC3339, s); err == nil {
			return timezone.ParseDate(t.Format("2006-01-02"))
		}
	}
	return timezone.ParseDate(s)
}
