package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/candidate-compare/backend/jdparse"
	"github.com/candidate-compare/backend/models"
	"github.com/candidate-compare/backend/storage"
)

// JDHandler serves the job-description lifecycle endpoints
type JDHandler struct {
	service *jdparse.Service
	store   *storage.MemoryStore
	logger  *zap.Logger
}

// NewJDHandler creates a new JD handler
func NewJDHandler(service *jdparse.Service, store *storage.MemoryStore, logger *zap.Logger) *JDHandler {
	return &JDHandler{service: service, store: store, logger: logger}
}

// ParseJD parses raw JD text and makes it the current JD
// @Summary Parse a job description
// @Description Parse raw JD text into structure via AI, with a regex fallback, and store it as the current JD
// @Tags JD
// @Accept json
// @Produce json
// @Param request body models.ParseJDRequest true "JD text"
// @Success 200 {object} models.SuccessResponse{data=models.JobDescription}
// @Failure 400 {object} models.ErrorResponse "Empty or invalid JD text"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/jd/parse [post]
func (h *JDHandler) ParseJD(c *gin.Context) {
	var req models.ParseJDRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.JDText) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Please provide non-empty jdText",
			Code:  "INVALID_JD_TEXT",
		})
		return
	}

	jd, err := h.service.ParseAndStoreJD(c.Request.Context(), req.JDText)
	if err != nil {
		h.logger.Error("JD parsing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "JD parsing failed",
			Code:  "JD_PARSE_FAILED",
		})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "JD parsed successfully",
		Data:    jd,
	})
}

// GetJD returns the current JD
// @Summary Get the current JD
// @Tags JD
// @Produce json
// @Success 200 {object} models.SuccessResponse{data=models.JobDescription}
// @Failure 404 {object} models.ErrorResponse "No JD loaded"
// @Router /api/jd [get]
func (h *JDHandler) GetJD(c *gin.Context) {
	jd := h.service.CurrentJD()
	if jd == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "No JD loaded, parse a JD first",
			Code:  "NO_JD_DATA",
		})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    jd,
	})
}

// DeleteJD clears the current JD
// @Summary Delete the current JD
// @Tags JD
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Router /api/jd [delete]
func (h *JDHandler) DeleteJD(c *gin.Context) {
	h.service.ClearJD()
	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "JD cleared",
	})
}

// LoadDemoJD loads the canned demo JD without calling the parser
// @Summary Load the demo JD
// @Description Load a built-in Senior Frontend Developer JD for demos and offline use
// @Tags JD
// @Produce json
// @Success 200 {object} models.SuccessResponse{data=models.JobDescription}
// @Router /api/jd/demo [post]
func (h *JDHandler) LoadDemoJD(c *gin.Context) {
	h.store.SetDemoJD()
	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Demo JD loaded",
		Data:    h.store.GetJD(),
	})
}

// JDStatus reports whether a JD is currently loaded
// @Summary Get JD status
// @Tags JD
// @Produce json
// @Success 200 {object} models.SuccessResponse{data=models.JDStatus}
// @Router /api/jd/status [get]
func (h *JDHandler) JDStatus(c *gin.Context) {
	status := models.JDStatus{}
	if jd := h.service.CurrentJD(); jd != nil {
		status.HasJD = true
		status.Title = jd.Title
		status.Company = jd.Company
		parsedAt := jd.ParsedAt
		status.ParsedAt = &parsedAt
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    status,
	})
}
