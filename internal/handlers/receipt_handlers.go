package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chatcont39-glitch/educheck/internal/models"
	"github.com/chatcont39-glitch/educheck/internal/storage"
	"github.com/chatcont39-glitch/educheck/pkg/utils"
)

// SavePDFRequest is the payload of POST /api/save-pdf. PDFBase64 carries the
// standard base64 encoding of the document bytes with no data-URI prefix.
type SavePDFRequest struct {
	FileName  string `json:"fileName"`
	PDFBase64 string `json:"pdfBase64"`
}

// ReceiptHandler serves the receipt persistence endpoints.
type ReceiptHandler struct {
	store storage.Store
}

// NewReceiptHandler creates a new instance of ReceiptHandler.
func NewReceiptHandler(store storage.Store) *ReceiptHandler {
	return &ReceiptHandler{store: store}
}

// SavePDF handles POST /api/save-pdf.
func (h *ReceiptHandler) SavePDF(c *gin.Context) {
	var req SavePDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data"})
		return
	}
	if req.FileName == "" || req.PDFBase64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data"})
		return
	}

	payload, err := base64.StdEncoding.DecodeString(req.PDFBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid base64 payload"})
		return
	}

	path, err := h.store.Persist(c.Request.Context(), req.FileName, payload)
	if err != nil {
		if errors.Is(err, storage.ErrMissingArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data"})
			return
		}
		utils.LogError(err, "Error saving PDF")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save PDF"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "PDF saved successfully", "path": path})
}

// History handles GET /api/history.
func (h *ReceiptHandler) History(c *gin.Context) {
	history, err := h.store.ListHistory(c.Request.Context())
	if err != nil {
		utils.LogError(err, "Error reading history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read history"})
		return
	}
	if history == nil {
		history = []models.HistoryEntry{}
	}
	c.JSON(http.StatusOK, history)
}
