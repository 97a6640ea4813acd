package capability

// Model binds an exact upstream model name to a capability template.
type Model struct {
	Name     string `mapstructure:"name" json:"name"`
	Provider string `mapstructure:"provider" json:"provider"`
	Template string `mapstructure:"template" json:"template"`
}

// Models is the built-in model table in declaration order.
func Models() []Model {
	return []Model{
		// OpenAI
		{Name: "o1-mini", Provider: "openai", Template: TextOnly},
		{Name: "o1-mini-2024-09-12", Provider: "openai", Template: TextOnly},
		{Name: "o1-preview", Provider: "openai", Template: TextOnly},
		{Name: "o1-preview-2024-09-12", Provider: "openai", Template: TextOnly},
		{Name: "o3-mini", Provider: "openai", Template: TextOnly},
		{Name: "o3-mini-2025-01-31", Provider: "openai", Template: TextOnly},
		{Name: "gpt-4o", Provider: "openai", Template: CommonVision},
		{Name: "gpt-4o-2024-08-06", Provider: "openai", Template: CommonVision},
		{Name: "gpt-4o-2024-05-13", Provider: "openai", Template: CommonVision},
		{Name: "chatgpt-4o-latest", Provider: "openai", Template: CommonVision},
		{Name: "gpt-4o-audio-preview", Provider: "openai", Template: AudioPreview},
		{Name: "gpt-4o-audio-preview-2024-10-01", Provider: "openai", Template: AudioPreview},
		{Name: "gpt-4-turbo", Provider: "openai", Template: CommonVision},
		{Name: "gpt-4-turbo-2024-04-09", Provider: "openai", Template: CommonVision},
		{Name: "gpt-4o-mini", Provider: "openai", Template: CommonVision},
		{Name: "gpt-4o-mini-2024-07-18", Provider: "openai", Template: CommonVision},
		{Name: "gpt-3.5-turbo", Provider: "openai", Template: TextOnly},

		// Anthropic
		{Name: "claude-3-7-sonnet-20250219", Provider: "anthropic", Template: ClaudePdf},
		{Name: "claude-3-5-sonnet-20241022", Provider: "anthropic", Template: ClaudePdf},
		{Name: "claude-3-5-sonnet-20240620", Provider: "anthropic", Template: ClaudeVision},
		{Name: "claude-3-5-haiku-20241022", Provider: "anthropic", Template: TextOnly},
		{Name: "claude-3-opus-20240229", Provider: "anthropic", Template: ClaudeVision},
		{Name: "claude-3-sonnet-20240229", Provider: "anthropic", Template: ClaudeVision},
		{Name: "claude-3-haiku-20240307", Provider: "anthropic", Template: ClaudeVision},

		// Google
		{Name: "gemini-1.5-pro", Provider: "google", Template: CommonVision},
		{Name: "gemini-1.5-flash", Provider: "google", Template: CommonVision},
		{Name: "gemini-2.0-flash", Provider: "google", Template: Gemini2},
		{Name: "gemini-2.0-flash-exp", Provider: "google", Template: Gemini2},
		{Name: "gemini-2.0-flash-thinking-exp", Provider: "google", Template: CommonVision},

		// DeepSeek
		{Name: "deepseek-chat", Provider: "deepseek", Template: TextOnly},
		{Name: "deepseek-reasoner", Provider: "deepseek", Template: TextOnly},
	}
}
