package handlers

import (
	"errors"
	"net/http"

	"github.com/trumanharry/record-nexus-connect/internal/db"
	"github.com/trumanharry/record-nexus-connect/internal/models"
	"github.com/trumanharry/record-nexus-connect/internal/services"
	"github.com/trumanharry/record-nexus-connect/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// commentView wraps a comment with its rendered body and direct replies.
type commentView struct {
	models.Comment
	ContentHTML string        `json:"content_html"`
	Replies     []commentView `json:"replies,omitempty"`
}

// List - GET /api/records/:type/:uid/comments
func (h *CommentHandler) List(c *gin.Context) {
	recordType := c.Param("type")
	uid := c.Param("uid")

	if !models.ValidEntityType(recordType) {
		respondError(c, http.StatusBadRequest, "unknown record type")
		return
	}

	var comments []models.Comment
	if err := db.DB.Preload("User").
		Where("record_uid = ? AND record_type = ?", uid, recordType).
		Order("created_at DESC").Find(&comments).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load comments")
		return
	}

	thread := services.GroupComments(comments)
	views := make([]commentView, 0, len(thread.Roots))
	for _, root := range thread.Roots {
		view := commentView{Comment: root, ContentHTML: utils.RenderMarkdown(root.Content)}
		for _, reply := range thread.RepliesByParent[root.ID] {
			view.Replies = append(view.Replies, commentView{
				Comment:     reply,
				ContentHTML: utils.RenderMarkdown(reply.Content),
			})
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{
		"comments": views,
		"total":    len(comments),
	})
}

// Create - POST /api/records/:type/:uid/comments
func (h *CommentHandler) Create(c *gin.Context) {
	user := currentUser(c)
	recordType := c.Param("type")
	uid := c.Param("uid")

	if !models.ValidEntityType(recordType) {
		respondError(c, http.StatusBadRequest, "unknown record type")
		return
	}
	if !recordExists(recordType, uid) {
		respondError(c, http.StatusNotFound, "record not found")
		return
	}

	var input struct {
		Content  string `json:"content"`
		ParentID *uint  `json:"parent_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := services.AddComment(user.ID, input.Content, recordType, uid, input.ParentID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyContent):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrUnauthenticated):
			respondError(c, http.StatusUnauthorized, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create comment")
		}
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// Vote - POST /api/comments/:uid/vote
func (h *CommentHandler) Vote(c *gin.Context) {
	user := currentUser(c)
	commentUID := c.Param("uid")

	var input struct {
		Direction string `json:"direction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "direction is required")
		return
	}

	direction := services.VoteDirection(input.Direction)
	if direction != services.VoteUp && direction != services.VoteDown {
		respondError(c, http.StatusBadRequest, "direction must be up or down")
		return
	}

	comment, err := services.CastVote(user.ID, commentUID, direction)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCommentNotFound):
			respondError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrUnauthenticated):
			respondError(c, http.StatusUnauthorized, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to record vote")
		}
		return
	}

	c.JSON(http.StatusOK, comment)
}
