package downloads

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-rocket/internal/shared/server/middleware"
	"resume-rocket/internal/shared/server/respond"
	"resume-rocket/resume/render"
)

// FallbackHeader is "true" when a text file stands in for the requested
// format.
const FallbackHeader = "X-Render-Fallback"

// Handler wires HTTP handlers to the downloads service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches download routes. Extra middleware applies to the
// render route only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, renderMiddleware ...gin.HandlerFunc) {
	rg.POST("/download/:format", append(renderMiddleware, h.download)...)
	rg.GET("/downloads", h.list)
	rg.GET("/downloads/:id", h.get)
}

type downloadRequest struct {
	ResumeText string `json:"resume_text" form:"resume_text"`
}

func (h *Handler) download(c *gin.Context) {
	format, err := render.ParseFormat(c.Param("format"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeUnsupported, "Unsupported format", gin.H{"format": c.Param("format")})
		return
	}
	c.Set(middleware.RenderFormatKey, string(format))

	var req downloadRequest
	if err := c.ShouldBind(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid request body", nil)
		return
	}

	dl, err := h.Svc.Render(c.Request.Context(), format, req.ResumeText)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "No resume text provided", nil)
		case errors.Is(err, render.ErrUnsupportedFormat):
			respond.Error(c, http.StatusBadRequest, respond.CodeUnsupported, "Unsupported format", nil)
		case errors.Is(err, render.ErrBackendUnavailable):
			respond.Error(c, http.StatusServiceUnavailable, respond.CodeRender, renderMessage(err), nil)
		default:
			var renderErr *render.RenderError
			if errors.As(err, &renderErr) {
				respond.Error(c, http.StatusInternalServerError, respond.CodeRender, renderMessage(err), nil)
				return
			}
			respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to render document", nil)
		}
		return
	}

	c.Set(middleware.DownloadIDKey, dl.Record.ID)
	c.Set(middleware.FallbackKey, dl.Record.Fallback)
	c.Header(FallbackHeader, strconv.FormatBool(dl.Record.Fallback))
	c.Header("X-Download-Id", dl.Record.ID)
	respond.Attachment(c, dl.Record.FileName, dl.Record.ContentType, dl.Body)
}

func renderMessage(err error) string {
	var renderErr *render.RenderError
	if errors.As(err, &renderErr) {
		return "Error generating " + strings.ToUpper(string(renderErr.Format)) + ": " + renderErr.Message
	}
	return "Error generating document"
}

func (h *Handler) list(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "limit must be a non-negative integer", nil)
			return
		}
		limit = n
	}
	records, err := h.Svc.Recent(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to list downloads", nil)
		return
	}
	respond.OK(c, gin.H{"downloads": records})
}

func (h *Handler) get(c *gin.Context) {
	rec, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, respond.CodeNotFound, "download not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "missing download id", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to load download", nil)
		}
		return
	}
	respond.OK(c, rec)
}
