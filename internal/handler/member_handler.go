package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	members MemberService
}

func NewMemberHandler(members MemberService) *MemberHandler {
	return &MemberHandler{members: members}
}

// GetAll returns the member roster
// @Summary  List members
// @Tags     Members
// @Produce  json
// @Success  200  {object}  map[string][]model.Member
// @Failure  500  {object}  map[string]string
// @Router   /members [get]
func (h *MemberHandler) GetAll(c *gin.Context) {
	members, err := h.members.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch members")
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}
