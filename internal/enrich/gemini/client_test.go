package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	replies []string
	err     error
	prompts []string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "", errors.New("unexpected call")
	}
	next := f.replies[0]
	f.replies = f.replies[1:]
	return next, nil
}

func TestEnrichParsesReply(t *testing.T) {
	gen := &fakeGenerator{replies: []string{"```json\n{\"insights\":[\"Clear metrics\",\" \"],\"suggestions\":[\"a\",\"b\",\"c\",\"d\"]}\n```"}}
	out, err := New(gen).Enrich(context.Background(), "Jane Roe\nManaged 8-member team")
	require.NoError(t, err)

	assert.Equal(t, "gemini", out.Source)
	assert.Equal(t, []string{"Clear metrics"}, out.Insights)
	assert.Equal(t, []string{"a", "b", "c"}, out.Suggestions)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Managed 8-member team")
}

func TestEnrichRepairsInvalidJSON(t *testing.T) {
	gen := &fakeGenerator{replies: []string{"Sure! Here you go", `{"insights":["ok"],"suggestions":[]}`}}
	out, err := New(gen).Enrich(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, out.Insights)
	require.Len(t, gen.prompts, 2)
	assert.True(t, strings.Contains(gen.prompts[1], "Sure! Here you go"))
}

func TestEnrichFailsAfterRepair(t *testing.T) {
	gen := &fakeGenerator{replies: []string{"nope", "still nope"}}
	_, err := New(gen).Enrich(context.Background(), "text")
	assert.ErrorContains(t, err, "invalid JSON from gemini")
}

func TestEnrichPropagatesGeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota")}
	_, err := New(gen).Enrich(context.Background(), "text")
	assert.EqualError(t, err, "quota")
}

func TestEnrichSkipsBlankText(t *testing.T) {
	gen := &fakeGenerator{}
	out, err := New(gen).Enrich(context.Background(), "  ")
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Empty(t, gen.prompts)
}

func TestNewGeneratorRequiresKey(t *testing.T) {
	_, err := NewGenerator(context.Background(), " ", "")
	assert.Error(t, err)
	var g *Generator
	assert.Empty(t, g.Model())
}
