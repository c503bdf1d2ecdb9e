package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gverdi/frasario-backend/internal/domain"
	"github.com/gverdi/frasario-backend/internal/service/grammarcard"
	"github.com/gverdi/frasario-backend/internal/service/sentence"
)

// Handler holds the services behind the HTTP API.
type Handler struct {
	sentences *sentence.Service
	cards     *grammarcard.Service
	log       *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(log *slog.Logger, sentences *sentence.Service, cards *grammarcard.Service) *Handler {
	return &Handler{
		sentences: sentences,
		cards:     cards,
		log:       log.With("component", "http"),
	}
}

type analyzeRequest struct {
	Text string `json:"text"`
}

// POST /api/sentences
func (h *Handler) AnalyzeSentence(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	result, err := h.sentences.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		h.fail(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"success": true, "data": result.Sentence, "created": result.Created})
}

// GET /api/sentences
func (h *Handler) ListSentences(c *gin.Context) {
	list, err := h.sentences.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/sentences/exists?text=...
func (h *Handler) SentenceExists(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "text query parameter is required"})
		return
	}

	result, err := h.sentences.Exists(c.Request.Context(), text)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !result.Found {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "id": result.ID})
}

// GET /api/sentences/:id
func (h *Handler) GetSentence(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid sentence id"})
		return
	}

	record, err := h.sentences.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

type appendCardRequest struct {
	SelectedText string                `json:"selectedText"`
	Explanation  string                `json:"explanation"`
	Parts        []domain.SelectedPart `json:"parts"`
}

// POST /api/sentences/:id/grammar-cards
func (h *Handler) AppendGrammarCard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid sentence id"})
		return
	}

	var req appendCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	card, err := h.cards.Append(c.Request.Context(), id, grammarcard.AppendInput{
		SelectedText: req.SelectedText,
		Explanation:  req.Explanation,
		Parts:        req.Parts,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": card})
}

type explainRequest struct {
	Indices []int `json:"indices"`
}

// POST /api/sentences/:id/grammar-cards/explain
func (h *Handler) ExplainGrammar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid sentence id"})
		return
	}

	var req explainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	card, err := h.cards.Explain(c.Request.Context(), id, req.Indices)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": card})
}

// DELETE /api/sentences/:id/grammar-cards/:cardID
func (h *Handler) RemoveGrammarCard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid sentence id"})
		return
	}
	cardID, err := uuid.Parse(c.Param("cardID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid card id"})
		return
	}

	if err := h.cards.Remove(c.Request.Context(), id, cardID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// fail maps domain errors to HTTP result shapes. Persistence faults and
// unexpected errors are logged with their cause but surfaced generically.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "not found"})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Sentence already exists"})
	case errors.Is(err, domain.ErrGenerationFailed):
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": domain.ErrGenerationFailed.Error()})
	default:
		h.log.ErrorContext(c.Request.Context(), "request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
	}
}
