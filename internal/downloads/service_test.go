package downloads

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-rocket/internal/shared/metrics"
	"resume-rocket/resume/render"
)

type failingRepo struct{ MemoryRepo }

func (*failingRepo) Create(context.Context, Record) error { return errors.New("db down") }

func newService(t *testing.T, opts render.Options, repo Repo) (*Service, *metrics.Recorder) {
	t.Helper()
	rec := metrics.NewRecorder(nil)
	stamp := time.Date(2026, 10, 19, 14, 5, 9, 0, time.UTC)
	return &Service{
		Repo:      repo,
		Renderers: render.NewRegistry(opts),
		Metrics:   rec,
		Now:       func() time.Time { return stamp },
		NewID:     func() string { return "dl-1" },
	}, rec
}

func TestServiceRenderRecordsDownload(t *testing.T) {
	repo := NewMemoryRepo(10)
	svc, _ := newService(t, render.Options{}, repo)

	dl, err := svc.Render(context.Background(), render.FormatDOCX, "Jane Roe\nPROFESSIONAL SUMMARY\nBuilds things")
	require.NoError(t, err)
	assert.Equal(t, "resume_20261019_140509.docx", dl.Record.FileName)
	assert.Equal(t, render.ContentTypeDOCX, dl.Record.ContentType)
	assert.Equal(t, int64(len(dl.Body)), dl.Record.SizeBytes)
	assert.False(t, dl.Record.Fallback)

	recent, err := svc.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "dl-1", recent[0].ID)
}

func TestServiceRenderFallback(t *testing.T) {
	svc, rec := newService(t, render.Options{DisablePDF: true}, NewMemoryRepo(10))

	text := "Jane Roe\nPROFESSIONAL SUMMARY"
	dl, err := svc.Render(context.Background(), render.FormatPDF, text)
	require.NoError(t, err)
	assert.Equal(t, text, string(dl.Body))
	assert.Equal(t, "resume_20261019_140509.txt", dl.Record.FileName)
	assert.True(t, dl.Record.Fallback)
	assert.Equal(t, "pdf", dl.Record.Format)

	reg := rec.Registry()
	count, err := testutil.GatherAndCount(reg, "resume_render_fallbacks_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestServiceRenderErrors(t *testing.T) {
	svc, _ := newService(t, render.Options{DisableDOCX: true}, NewMemoryRepo(10))

	_, err := svc.Render(context.Background(), render.FormatDOCX, " ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Render(context.Background(), render.FormatDOCX, "Jane Roe")
	var renderErr *render.RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.ErrorIs(t, err, render.ErrBackendUnavailable)

	_, err = svc.Render(context.Background(), "rtf", "Jane Roe")
	assert.ErrorIs(t, err, render.ErrUnsupportedFormat)
}

func TestServiceRenderSurvivesRepoFailure(t *testing.T) {
	svc, _ := newService(t, render.Options{}, &failingRepo{})
	dl, err := svc.Render(context.Background(), render.FormatText, "Jane Roe")
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", string(dl.Body))
}

func TestServiceGet(t *testing.T) {
	repo := NewMemoryRepo(10)
	svc, _ := newService(t, render.Options{}, repo)
	_, err := svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
