package analyses

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-rocket/internal/extract"
	"resume-rocket/internal/shared/server/middleware"
	"resume-rocket/internal/shared/server/respond"
	"resume-rocket/internal/shared/util"
	"resume-rocket/resume/model"
)

const multipartOverhead = 1 << 20

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches analysis routes to the router group. Extra
// middleware applies to the analyze route only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, analyzeMiddleware ...gin.HandlerFunc) {
	rg.POST("/analyze", append(analyzeMiddleware, h.analyze)...)
	rg.POST("/rewrite", h.rewrite)
	rg.POST("/classify", h.classify)
}

type textRequest struct {
	Text string `json:"text"`
}

type rewriteRequest struct {
	Text       string           `json:"text"`
	Assessment model.Assessment `json:"assessment"`
}

func (h *Handler) analyze(c *gin.Context) {
	in, ok := h.readInput(c)
	if !ok {
		return
	}
	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	result, err := h.Svc.Analyze(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "resume text is empty", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to analyze resume", nil)
		}
		return
	}
	c.Set(middleware.AnalysisIDKey, result.ID.String())
	respond.OK(c, result)
}

// readInput accepts a multipart "resume" upload or a JSON body with text.
func (h *Handler) readInput(c *gin.Context) (Input, bool) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		var req textRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid JSON body", nil)
			return Input{}, false
		}
		return Input{Text: req.Text}, true
	}

	if h.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes+multipartOverhead)
	}
	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "No file selected", nil)
		return Input{}, false
	}
	defer file.Close()

	if err := extract.ValidateUpload(header.Filename, header.Size, h.MaxUploadBytes); err != nil {
		var verr *extract.ValidationError
		var details []string
		if errors.As(err, &verr) {
			details = verr.Problems
		}
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid upload", details)
		return Input{}, false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "failed to read upload", nil)
		return Input{}, false
	}
	text, err := extract.ExtractTextFromBytes(c.Request.Context(), data, header.Header.Get("Content-Type"), header.Filename)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFile) {
			respond.Error(c, http.StatusUnsupportedMediaType, respond.CodeUnsupported, "unsupported file type", nil)
			return Input{}, false
		}
		respond.Error(c, http.StatusUnprocessableEntity, respond.CodeValidation, "could not read text from file", nil)
		return Input{}, false
	}
	name, err := util.SanitizeFileName(header.Filename)
	if err != nil {
		name = ""
	}
	return Input{Text: text, FileName: name}, true
}

func (h *Handler) rewrite(c *gin.Context) {
	var req rewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid JSON body", nil)
		return
	}
	doc, err := h.Svc.Rewrite(c.Request.Context(), req.Text, req.Assessment)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid assessment", err.Error())
			return
		}
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to rewrite resume", nil)
		return
	}
	respond.OK(c, gin.H{
		"rewritten":    doc.Text(),
		"cover_letter": doc.CoverLetter,
		"sections":     doc.Sections.Strings(),
	})
}

func (h *Handler) classify(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid JSON body", nil)
		return
	}
	lines, err := h.Svc.Classify(c.Request.Context(), req.Text)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to classify resume", nil)
		return
	}
	respond.OK(c, gin.H{"lines": lines})
}
