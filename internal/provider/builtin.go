package provider

import "github.com/nulzo/prism-registry/internal/settings"

// Builtin returns the provider table in declaration order, which is also the
// order settings screens list them in.
func Builtin() []Descriptor {
	return []Descriptor{
		{
			ID:    "openai",
			Label: "OpenAI",
			Icon:  "openai",
			Schema: settings.Schema{Fields: []settings.Field{
				baseURLField("https://api.openai.com/v1"),
				apiKeyField(),
				stringField("organization", false, false),
				stringField("project", false, false),
				compatibilityField(),
			}},
			Initial: settings.Values{"compatibility": "strict"},
			Build:   openAICompatible("openai", false),
		},
		{
			ID:    "azure",
			Label: "Azure",
			Icon:  "microsoft-c",
			Schema: settings.Schema{Fields: []settings.Field{
				stringField("resourceName", true, false),
				apiKeyField(),
				{
					Name:        "apiVersion",
					Type:        settings.String,
					Default:     "2024-10-21",
					Title:       "field.apiVersion.title",
					Description: "field.apiVersion.description",
				},
				baseURLField(""),
			}},
			Build: buildAzure,
		},
		{
			ID:    "anthropic",
			Label: "Anthropic",
			Icon:  "anthropic",
			Schema: settings.Schema{Fields: []settings.Field{
				baseURLField("https://api.anthropic.com"),
				apiKeyField(),
			}},
			Build: buildAnthropic,
		},
		{
			ID:    "google",
			Label: "Google",
			Icon:  "google-c",
			Schema: settings.Schema{Fields: []settings.Field{
				baseURLField("https://generativelanguage.googleapis.com"),
				apiKeyField(),
			}},
			Build: buildGoogle,
		},
		{
			ID:    "deepseek",
			Label: "DeepSeek",
			Icon:  "deepseek-c",
			Schema: settings.Schema{Fields: []settings.Field{
				baseURLField("https://api.deepseek.com/v1"),
				apiKeyField(),
			}},
			Build: openAICompatible("deepseek", false),
		},
		{
			ID:    "mistral",
			Label: "Mistral",
			Icon:  "mistral-c",
			Schema: settings.Schema{Fields: []settings.Field{
				baseURLField("https://api.mistral.ai/v1"),
				apiKeyField(),
			}},
			Build: openAICompatible("mistral", false),
		},
		{
			ID:    "xai",
			Label: "xAI",
			Icon:  "grok",
			Schema: settings.Schema{Fields: []settings.Field{
				baseURLField("https://api.x.ai/v1"),
				apiKeyField(),
			}},
			Build: openAICompatible("xai", false),
		},
		{
			ID:    "togetherai",
			Label: "Together.ai",
			Icon:  "togetherai-c",
			Schema: settings.Schema{Fields: []settings.Field{
				baseURLField("https://api.together.xyz/v1"),
				apiKeyField(),
			}},
			Build: openAICompatible("togetherai", false),
		},
		{
			ID:    "cohere",
			Label: "Cohere",
			Icon:  "cohere-c",
			Schema: settings.Schema{Fields: []settings.Field{
				baseURLField("https://api.cohere.ai/compatibility/v1"),
				apiKeyField(),
			}},
			Build: openAICompatible("cohere", false),
		},
		{
			ID:    "groq",
			Label: "Groq",
			Icon:  "groq",
			Schema: settings.Schema{Fields: []settings.Field{
				baseURLField("https://api.groq.com/openai/v1"),
				apiKeyField(),
			}},
			Build: openAICompatible("groq", false),
		},
		{
			// Local backend: no authentication field at all.
			ID:    "ollama",
			Label: "Ollama",
			Icon:  "ollama",
			Schema: settings.Schema{Fields: []settings.Field{
				baseURLField("http://localhost:11434/v1"),
			}},
			Build: openAICompatible("ollama", true),
		},
		{
			ID:    "openrouter",
			Label: "OpenRouter",
			Icon:  "openrouter",
			Schema: settings.Schema{Fields: []settings.Field{
				baseURLField("https://openrouter.ai/api/v1"),
				apiKeyField(),
			}},
			Build: openAICompatible("openrouter", false),
		},
		{
			ID:    "bedrock",
			Label: "Amazon Bedrock",
			Icon:  "bedrock",
			Schema: settings.Schema{Fields: []settings.Field{
				stringField("region", true, false),
				stringField("accessKeyId", true, false),
				stringField("secretAccessKey", true, true),
				stringField("sessionToken", false, true),
			}},
			Initial: settings.Values{"region": "us-east-1"},
			Build:   buildBedrock,
		},
	}
}
