package roast

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"roast-backend/internal/extract"
	"roast-backend/internal/linkedin"
	"roast-backend/internal/llm"
	"roast-backend/internal/shared/server/respond"
)

// Handler exposes the roast endpoints.
type Handler struct {
	svc            *Service
	dev            bool
	maxUploadBytes int64
}

// NewHandler constructs a Handler. dev controls whether error responses carry
// debug details.
func NewHandler(svc *Service, dev bool, maxUploadBytes int64) *Handler {
	return &Handler{svc: svc, dev: dev, maxUploadBytes: maxUploadBytes}
}

// RegisterRoutes mounts the roast endpoints on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cv", h.roastCV)
	rg.POST("/linkedin", h.roastLinkedIn)
}

func (h *Handler) roastCV(c *gin.Context) {
	if c.Request.ContentLength > h.maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "file too large", "")
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Error(c, http.StatusBadRequest, "file too large", h.details(err))
			return
		}
		respond.Error(c, http.StatusBadRequest, "no file uploaded", h.details(err))
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "file too large", "")
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !extract.Supported(mimeType) {
		respond.Error(c, http.StatusBadRequest, "unsupported file type, use PDF, DOCX or plain text", "")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "could not read uploaded file", h.details(err))
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "could not read uploaded file", h.details(err))
		return
	}

	result, err := h.svc.RoastCV(c.Request.Context(), data, mimeType, fileHeader.Filename)
	if err != nil {
		h.fail(c, err)
		return
	}

	respond.OK(c, CVResponse{
		Success:         true,
		Roast:           result.Roast,
		WordCount:       result.WordCount,
		ExtractedLength: result.ExtractedLength,
	})
}

func (h *Handler) roastLinkedIn(c *gin.Context) {
	var req LinkedInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body", h.details(err))
		return
	}

	if req.URL == "" && req.Content == "" {
		respond.Error(c, http.StatusBadRequest, "provide a LinkedIn profile url or pasted content", "")
		return
	}

	profileURL := ""
	if req.Content == "" {
		if !linkedin.IsProfileURL(req.URL) {
			respond.Error(c, http.StatusBadRequest, "please provide a valid LinkedIn profile URL", "")
			return
		}
		profileURL = req.URL
	}

	out, err := h.svc.RoastLinkedIn(c.Request.Context(), req.URL, req.Content)
	if err != nil {
		h.fail(c, err)
		return
	}

	respond.OK(c, LinkedInResponse{
		Success:    true,
		Roast:      out,
		ProfileURL: profileURL,
	})
}

// fail maps pipeline errors to one HTTP status and user-facing message each.
func (h *Handler) fail(c *gin.Context, err error) {
	var exErr *extract.Error
	switch {
	case errors.Is(err, extract.ErrUnsupportedType):
		respond.Error(c, http.StatusBadRequest, "unsupported file type, use PDF, DOCX or plain text", h.details(err))
	case errors.As(err, &exErr):
		respond.Error(c, http.StatusBadRequest, "failed to extract text from "+exErr.Format+" file", h.details(err))
	case errors.Is(err, ErrContentTooShort):
		respond.Error(c, http.StatusBadRequest, "content too short", h.details(err))
	case errors.Is(err, llm.ErrBadRequest):
		respond.Error(c, http.StatusBadRequest, llm.ErrBadRequest.Error(), h.details(err))
	case errors.Is(err, llm.ErrRateLimited):
		respond.Error(c, http.StatusTooManyRequests, llm.ErrRateLimited.Error(), h.details(err))
	case errors.Is(err, llm.ErrAuth):
		respond.Error(c, http.StatusInternalServerError, llm.ErrAuth.Error(), h.details(err))
	case errors.Is(err, llm.ErrNotConfigured):
		respond.Error(c, http.StatusInternalServerError, llm.ErrNotConfigured.Error(), h.details(err))
	default:
		respond.Error(c, http.StatusInternalServerError, llm.ErrUpstream.Error(), h.details(err))
	}
}

func (h *Handler) details(err error) string {
	if h.dev && err != nil {
		return err.Error()
	}
	return ""
}
