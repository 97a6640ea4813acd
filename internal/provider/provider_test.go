package provider

import (
	"testing"

	"github.com/nulzo/prism-registry/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keys struct{}

func (keys) Locale() string                        { return "test" }
func (keys) T(key string, params ...string) string { return key }

func validated(t *testing.T, d Descriptor, user settings.Values) *settings.Validated {
	t.Helper()
	v, err := d.Schema.Validate(d.ID, settings.Merge(d.Initial, user), keys{})
	require.NoError(t, err)
	return v
}

func builtin(t *testing.T) *Table {
	t.Helper()
	table, problems := NewTable(Builtin())
	require.Empty(t, problems)
	return table
}

func TestBuiltin_UniqueIDsAndRecipes(t *testing.T) {
	table := builtin(t)
	assert.Equal(t, len(Builtin()), table.Len())

	for _, d := range table.List() {
		assert.NotEmpty(t, d.Label, d.ID)
		assert.NotNil(t, d.Build, d.ID)
	}
}

func TestBuiltin_InitialSettingsAreSchemaValid(t *testing.T) {
	for _, d := range Builtin() {
		filled := d.Schema.FillRequired(d.InitialSettings())
		_, err := d.Schema.Validate(d.ID, filled, keys{})
		assert.NoError(t, err, d.ID)
	}
}

func TestBuiltin_OllamaHasNoAuthField(t *testing.T) {
	d, ok := builtin(t).Get("ollama")
	require.True(t, ok)

	assert.False(t, d.RequiresAuth())
	assert.False(t, d.Schema.Has("apiKey"))
}

func TestGet_ExactMatchOnly(t *testing.T) {
	table := builtin(t)

	_, ok := table.Get("OpenAI")
	assert.False(t, ok)
	_, ok = table.Get("open")
	assert.False(t, ok)
	_, ok = table.Get("openai")
	assert.True(t, ok)
}

func TestNewTable_Problems(t *testing.T) {
	descs := []Descriptor{
		{ID: "a", Build: openAICompatible("a", false)},
		{ID: "a", Build: openAICompatible("a", false)},
		{ID: ""},
		{ID: "b", Initial: settings.Values{"ghost": true}},
	}

	_, problems := NewTable(descs)
	assert.ElementsMatch(t, []string{
		`duplicate provider id "a"`,
		"provider with empty id",
		`provider "b" has no construction recipe`,
		`provider "b": initial setting "ghost" is not in its schema`,
	}, problems)
}

func TestBuild_OpenAI(t *testing.T) {
	d, _ := builtin(t).Get("openai")

	c, err := d.Build(validated(t, d, settings.Values{"apiKey": "sk-test"}))
	require.NoError(t, err)

	oc, ok := c.(*OpenAIClient)
	require.True(t, ok)
	assert.Equal(t, "openai", oc.Provider())
	assert.Equal(t, "https://api.openai.com/v1", oc.BaseURL)
	assert.True(t, oc.Strict())
}

func TestBuild_OpenAICompatibleBackends(t *testing.T) {
	for _, id := range []string{"deepseek", "mistral", "xai", "togetherai", "cohere", "groq", "openrouter"} {
		t.Run(id, func(t *testing.T) {
			d, _ := builtin(t).Get(id)
			c, err := d.Build(validated(t, d, settings.Values{"apiKey": "k"}))
			require.NoError(t, err)

			oc, ok := c.(*OpenAIClient)
			require.True(t, ok)
			assert.Equal(t, id, oc.Provider())
			assert.False(t, oc.Strict())
		})
	}
}

func TestBuild_Ollama(t *testing.T) {
	d, _ := builtin(t).Get("ollama")

	c, err := d.Build(validated(t, d, nil))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:11434/v1", c.(*OpenAIClient).BaseURL)
}

func TestBuild_Azure(t *testing.T) {
	d, _ := builtin(t).Get("azure")

	c, err := d.Build(validated(t, d, settings.Values{"resourceName": "contoso", "apiKey": "k"}))
	require.NoError(t, err)

	ac := c.(*AzureClient)
	assert.Equal(t, "https://contoso.openai.azure.com", ac.Endpoint)
	assert.Equal(t, "2024-10-21", ac.APIVersion)

	c, err = d.Build(validated(t, d, settings.Values{
		"resourceName": "contoso",
		"apiKey":       "k",
		"baseURL":      "https://proxy.example.com/",
	}))
	require.NoError(t, err)
	assert.Equal(t, "https://proxy.example.com", c.(*AzureClient).Endpoint)
}

func TestBuild_Anthropic(t *testing.T) {
	d, _ := builtin(t).Get("anthropic")

	c, err := d.Build(validated(t, d, settings.Values{"apiKey": "sk-ant"}))
	require.NoError(t, err)
	assert.Equal(t, "anthropic", c.Provider())
	assert.IsType(t, &AnthropicClient{}, c)
}

func TestBuild_Google(t *testing.T) {
	d, _ := builtin(t).Get("google")

	c, err := d.Build(validated(t, d, settings.Values{"apiKey": "AIza-test"}))
	require.NoError(t, err)

	gc := c.(*GoogleClient)
	assert.NotNil(t, gc.SDK)
	assert.Equal(t, "https://generativelanguage.googleapis.com", gc.BaseURL)
}

func TestBuild_Bedrock(t *testing.T) {
	d, _ := builtin(t).Get("bedrock")

	c, err := d.Build(validated(t, d, settings.Values{
		"accessKeyId":     "AKIA",
		"secretAccessKey": "secret",
	}))
	require.NoError(t, err)

	bc := c.(*BedrockClient)
	assert.Equal(t, "us-east-1", bc.Region)
	assert.NotNil(t, bc.SDK)
}
