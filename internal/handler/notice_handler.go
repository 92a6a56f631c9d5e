package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edudesk/edudesk-api/internal/service"
	appErrors "github.com/edudesk/edudesk-api/pkg/errors"
	"github.com/edudesk/edudesk-api/pkg/response"
)

// NoticeHandler exposes notice endpoints. The collection read is served
// with a wide-open CORS header so public school sites can embed the feed.
type NoticeHandler struct {
	notices *service.NoticeService
}

// NewNoticeHandler constructs NoticeHandler.
func NewNoticeHandler(notices *service.NoticeService) *NoticeHandler {
	return &NoticeHandler{notices: notices}
}

// List godoc
// @Summary List notices
// @Tags Notices
// @Produce json
// @Success 200 {array} models.Notice
// @Router /api/notices [get]
func (h *NoticeHandler) List(c *gin.Context) {
	notices, err := h.notices.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Document(c, http.StatusOK, notices)
}

// Get godoc
// @Summary Get notice by document id
// @Tags Notices
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} models.Notice
// @Router /api/notices/{id} [get]
func (h *NoticeHandler) Get(c *gin.Context) {
	notice, err := h.notices.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Document(c, http.StatusOK, notice)
}

// Create godoc
// @Summary Create notice
// @Tags Notices
// @Accept json
// @Produce json
// @Param payload body service.CreateNoticeRequest true "Notice payload"
// @Success 201 {object} response.Confirmation
// @Router /api/notices [post]
func (h *NoticeHandler) Create(c *gin.Context) {
	var req service.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	notice, err := h.notices.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Data created", notice)
}

// Update godoc
// @Summary Partially update notice
// @Tags Notices
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param payload body service.UpdateNoticeRequest true "Fields to merge"
// @Success 200 {object} models.Notice
// @Router /api/notices/{id} [patch]
func (h *NoticeHandler) Update(c *gin.Context) {
	var req service.UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	notice, err := h.notices.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Document(c, http.StatusOK, notice)
}

// Delete godoc
// @Summary Delete notice
// @Description Accepts the document id as a path segment or an id query parameter.
// @Tags Notices
// @Produce json
// @Param id path string false "Document ID"
// @Param id query string false "Document ID"
// @Success 200 {object} response.Confirmation
// @Router /api/notices/{id} [delete]
func (h *NoticeHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		id = c.Query("id")
	}
	if id == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "data not found"))
		return
	}
	deleted, err := h.notices.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Notice deleted successfully", deleted)
}
