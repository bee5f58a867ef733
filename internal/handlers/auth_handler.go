package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shift-scheduler/internal/auth"
	"github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/dto"
	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/httpresp"
)

var errInvalidCredentials = httperr.ErrUnauthorized("invalid_credentials", "Invalid email or password")

type AuthHandler struct {
	users  user.Directory
	tokens *auth.Tokens
}

func NewAuthHandler(users user.Directory, tokens *auth.Tokens) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  dto.UserDTO `json:"user"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := h.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			httperr.Respond(c, errInvalidCredentials)
			return
		}
		httperr.Respond(c, err)
		return
	}

	if !u.IsActive || !auth.CheckPassword(u.PasswordHash, req.Password) {
		httperr.Respond(c, errInvalidCredentials)
		return
	}

	token, err := h.tokens.Issue(u)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token")
		return
	}

	httpresp.OK(c, LoginResponse{Token: token, User: dto.FromUser(u)})
}
