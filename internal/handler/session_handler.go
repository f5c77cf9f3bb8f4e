package handler

import (
	"net/http"

	"taskboard/internal/auth"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	members MemberService
	tokens  *auth.Tokens
}

// NewSessionHandler builds the login endpoint; a nil tokens disables it
func NewSessionHandler(members MemberService, tokens *auth.Tokens) *SessionHandler {
	return &SessionHandler{members: members, tokens: tokens}
}

type SessionRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Create issues a session token to a roster member
// @Summary  Start session
// @Tags     Sessions
// @Accept   json
// @Produce  json
// @Param    session  body      SessionRequest  true  "Member email"
// @Success  200      {object}  map[string]interface{}
// @Failure  400      {object}  map[string]string
// @Failure  404      {object}  map[string]string
// @Failure  501      {object}  map[string]string
// @Router   /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	if h.tokens == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Sessions are disabled"})
		return
	}

	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	member, err := h.members.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err, "Failed to fetch members")
		return
	}
	if member == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	token, err := h.tokens.GenerateToken(member.Name)
	if err != nil {
		respondError(c, err, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "member": member})
}
