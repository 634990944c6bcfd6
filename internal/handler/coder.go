package handler

import (
	"errors"
	"net/http"

	"huffman_coding_go/internal/repo"
	"huffman_coding_go/internal/service"
	"huffman_coding_go/pkg/huffman"

	"github.com/gin-gonic/gin"
)

type CoderHandler struct {
	svc *service.CoderService
}

func NewCoderHandler(s *service.CoderService) *CoderHandler {
	return &CoderHandler{svc: s}
}

type createRunReq struct {
	Text string `json:"text"`
}

func (h *CoderHandler) CreateRun(c *gin.Context) {
	var req createRunReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	run, err := h.svc.Encode(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, huffman.ErrEmptyInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "input text is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, run)
}

type createBatchReq struct {
	Texts []string `json:"texts" binding:"required"`
}

func (h *CoderHandler) CreateBatch(c *gin.Context) {
	var req createBatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	runs, err := h.svc.EncodeBatch(c.Request.Context(), req.Texts)
	if err != nil {
		if errors.Is(err, huffman.ErrEmptyInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, runs)
}

func (h *CoderHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	run, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, run)
}

func (h *CoderHandler) List(c *gin.Context) {
	runs, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, runs)
}

type decodeReq struct {
	Encoded string `json:"encoded" binding:"required"`
}

func (h *CoderHandler) Decode(c *gin.Context) {
	id := c.Param("id")
	var req decodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	decoded, err := h.svc.Decode(c.Request.Context(), id, req.Encoded)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		case errors.Is(err, huffman.ErrTruncatedStream), errors.Is(err, huffman.ErrInvalidBit):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"decoded": decoded})
}

func (h *CoderHandler) TreeDOT(c *gin.Context) {
	id := c.Param("id")
	dot, err := h.svc.TreeDOT(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/vnd.graphviz", []byte(dot))
}
