package capability

import (
	"testing"

	"github.com/nulzo/prism-registry/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtin(t *testing.T) *Table {
	t.Helper()
	table, problems := NewTable(Templates(), Models(), DefaultTemplate)
	require.Empty(t, problems)
	return table
}

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern   string
		mediaType string
		want      bool
	}{
		{"image/*", "image/png", true},
		{"image/*", "IMAGE/JPEG", true},
		{"image/*", "application/pdf", false},
		{"application/pdf", "application/pdf", true},
		{"application/pdf", "application/pdf; charset=binary", true},
		{"application/pdf", "application/json", false},
		{"audio/*", "audio/mpeg", true},
		{"image/*", "image/*", false},
		{"image/*", "not a media type", false},
		{"image/*", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"_"+tt.mediaType, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.pattern, tt.mediaType))
		})
	}
}

func TestValidPattern(t *testing.T) {
	for _, p := range []string{"image/*", "application/pdf", "audio/*", "text/plain"} {
		assert.Truef(t, ValidPattern(p), "%s should be valid", p)
	}
	for _, p := range []string{"", "image", "*/*", "image/", "/png", "Image/*", "image/png; q=1", "a/b/c"} {
		assert.Falsef(t, ValidPattern(p), "%s should be invalid", p)
	}
}

func TestBuiltinTemplates_WellFormed(t *testing.T) {
	for _, tpl := range Templates() {
		for _, role := range api.Roles {
			for _, p := range tpl.For(role) {
				assert.Truef(t, ValidPattern(p), "template %s role %s: %q", tpl.Name, role, p)
			}
		}
	}
}

func TestResolve_KnownModel(t *testing.T) {
	table := builtin(t)

	assert.Equal(t, []string{"image/*", "application/pdf"}, table.Resolve("claude-3-5-sonnet-20241022", api.User))
	assert.Empty(t, table.Resolve("claude-3-5-sonnet-20241022", api.Assistant))
	assert.True(t, table.IsAllowed("claude-3-5-sonnet-20241022", api.User, "application/pdf"))
	assert.False(t, table.IsAllowed("claude-3-5-sonnet-20241022", api.Assistant, "application/pdf"))
}

func TestResolve_UnknownModelFallsBack(t *testing.T) {
	table := builtin(t)

	assert.Equal(t, []string{"image/*"}, table.Resolve("future-model-x", api.User))
	for _, role := range api.Roles {
		assert.NotPanics(t, func() { table.Resolve("", role) })
	}

	_, hit := table.TemplateFor("future-model-x")
	assert.False(t, hit)
}

func TestIsAllowed_Wildcard(t *testing.T) {
	table := builtin(t)

	assert.True(t, table.IsAllowed("gemini-2.0-flash", api.User, "audio/mpeg"))
	assert.False(t, table.IsAllowed("gpt-3.5-turbo", api.User, "image/png"))
}

func TestResolve_ReturnsCopy(t *testing.T) {
	table := builtin(t)

	got := table.Resolve("gpt-4o", api.User)
	got[0] = "video/*"
	assert.Equal(t, []string{"image/*"}, table.Resolve("gpt-4o", api.User))
}

func TestNames_DeclarationOrder(t *testing.T) {
	table := builtin(t)

	names := table.Names()
	require.Len(t, names, len(Models()))
	assert.Equal(t, "o1-mini", names[0])
	assert.Equal(t, Models()[len(Models())-1].Name, names[len(names)-1])
}

func TestModelsFor(t *testing.T) {
	table := builtin(t)

	for _, m := range table.ModelsFor("google") {
		assert.Equal(t, "google", m.Provider)
	}
	assert.Len(t, table.ModelsFor("google"), 5)
	assert.Empty(t, table.ModelsFor("nobody"))
}

func TestNewTable_IntegrityProblems(t *testing.T) {
	templates := []Template{
		{Name: "a", Inputs: map[api.Role][]string{api.User: {"image"}}},
		{Name: "a"},
	}
	models := []Model{
		{Name: "m1", Template: "a"},
		{Name: "m1", Template: "a"},
		{Name: "m2", Template: "missing"},
	}

	_, problems := NewTable(templates, models, "nope")

	assert.ElementsMatch(t, []string{
		`template "a": malformed media type pattern "image"`,
		`duplicate capability template "a"`,
		`duplicate model "m1"`,
		`model "m2" references undeclared template "missing"`,
		`default template "nope" is not declared`,
	}, problems)
}

func TestSniff(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	pdf := []byte("%PDF-1.7\n%âãÏÓ\n")

	assert.Equal(t, "image/png", Sniff(png))
	assert.Equal(t, "application/pdf", Sniff(pdf))
	assert.Equal(t, "text/plain", Sniff([]byte("hello world")))
}

func TestTemplates_Inputs(t *testing.T) {
	want := map[string]map[api.Role][]string{
		TextOnly:     {},
		CommonVision: {api.User: {"image/*"}},
		ClaudeVision: {api.User: {"image/*"}, api.Tool: {"image/*"}},
		ClaudePdf:    {api.User: {"image/*", "application/pdf"}, api.Tool: {"image/*"}},
		AudioPreview: {api.User: {"audio/*"}},
		Default:      {api.User: {"image/*"}},
		Gemini2:      {api.User: {"image/*", "audio/*"}},
	}

	names := make([]string, 0, len(Templates()))
	for _, tpl := range Templates() {
		names = append(names, tpl.Name)
		for _, role := range api.Roles {
			assert.Equalf(t, want[tpl.Name][role], tpl.Inputs[role], "template %s role %s", tpl.Name, role)
		}
	}
	assert.Equal(t, []string{TextOnly, CommonVision, ClaudeVision, ClaudePdf, AudioPreview, Default, Gemini2}, names)
	assert.Equal(t, Default, DefaultTemplate)
}

func TestModels_Table(t *testing.T) {
	want := []struct{ name, template string }{
		{"o1-mini", TextOnly},
		{"o1-mini-2024-09-12", TextOnly},
		{"o1-preview", TextOnly},
		{"o1-preview-2024-09-12", TextOnly},
		{"o3-mini", TextOnly},
		{"o3-mini-2025-01-31", TextOnly},
		{"gpt-4o", CommonVision},
		{"gpt-4o-2024-08-06", CommonVision},
		{"gpt-4o-2024-05-13", CommonVision},
		{"chatgpt-4o-latest", CommonVision},
		{"gpt-4o-audio-preview", AudioPreview},
		{"gpt-4o-audio-preview-2024-10-01", AudioPreview},
		{"gpt-4-turbo", CommonVision},
		{"gpt-4-turbo-2024-04-09", CommonVision},
		{"gpt-4o-mini", CommonVision},
		{"gpt-4o-mini-2024-07-18", CommonVision},
		{"gpt-3.5-turbo", TextOnly},
		{"claude-3-7-sonnet-20250219", ClaudePdf},
		{"claude-3-5-sonnet-20241022", ClaudePdf},
		{"claude-3-5-sonnet-20240620", ClaudeVision},
		{"claude-3-5-haiku-20241022", TextOnly},
		{"claude-3-opus-20240229", ClaudeVision},
		{"claude-3-sonnet-20240229", ClaudeVision},
		{"claude-3-haiku-20240307", ClaudeVision},
		{"gemini-1.5-pro", CommonVision},
		{"gemini-1.5-flash", CommonVision},
		{"gemini-2.0-flash", Gemini2},
		{"gemini-2.0-flash-exp", Gemini2},
		{"gemini-2.0-flash-thinking-exp", CommonVision},
		{"deepseek-chat", TextOnly},
		{"deepseek-reasoner", TextOnly},
	}

	models := Models()
	require.Len(t, models, len(want))
	for i, w := range want {
		assert.Equal(t, w.name, models[i].Name)
		assert.Equalf(t, w.template, models[i].Template, "model %s", w.name)
		assert.NotEmptyf(t, models[i].Provider, "model %s", w.name)
	}
}

func TestIsAllowed_BuiltinTable(t *testing.T) {
	table := builtin(t)

	assert.False(t, table.IsAllowed("gpt-4o", api.Tool, "image/png"))
	assert.False(t, table.IsAllowed("claude-3-5-haiku-20241022", api.User, "image/png"))
	assert.False(t, table.IsAllowed("gemini-2.0-flash", api.User, "application/pdf"))
	assert.True(t, table.IsAllowed("claude-3-7-sonnet-20250219", api.User, "application/pdf"))
	assert.True(t, table.IsAllowed("claude-3-opus-20240229", api.Tool, "image/jpeg"))
	assert.True(t, table.IsAllowed("gpt-4o-audio-preview", api.User, "audio/wav"))
}
