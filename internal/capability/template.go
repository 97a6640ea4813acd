// Package capability holds the model capability table: which input media types a
// model accepts for each conversational role.
package capability

import (
	"slices"

	"github.com/nulzo/prism-registry/pkg/api"
)

// Template is a named, reusable role -> accepted media-type patterns mapping.
// A role with no patterns is text-only.
type Template struct {
	Name   string
	Inputs map[api.Role][]string
}

// For returns a copy of the patterns accepted for role.
func (t Template) For(role api.Role) []string {
	return slices.Clone(t.Inputs[role])
}

const (
	TextOnly     = "textOnly"
	CommonVision = "commonVision"
	ClaudeVision = "claudeVision"
	ClaudePdf    = "claudePdf"
	AudioPreview = "audioPreview"
	Default      = "default"
	Gemini2      = "gemini2"
)

// DefaultTemplate applies to model names missing from the table.
const DefaultTemplate = Default

// Templates are the built-in capability templates, in declaration order.
func Templates() []Template {
	return []Template{
		{Name: TextOnly},
		{Name: CommonVision, Inputs: map[api.Role][]string{
			api.User: {"image/*"},
		}},
		{Name: ClaudeVision, Inputs: map[api.Role][]string{
			api.User: {"image/*"},
			api.Tool: {"image/*"},
		}},
		{Name: ClaudePdf, Inputs: map[api.Role][]string{
			api.User: {"image/*", "application/pdf"},
			api.Tool: {"image/*"},
		}},
		{Name: AudioPreview, Inputs: map[api.Role][]string{
			api.User: {"audio/*"},
		}},
		{Name: Default, Inputs: map[api.Role][]string{
			api.User: {"image/*"},
		}},
		{Name: Gemini2, Inputs: map[api.Role][]string{
			api.User: {"image/*", "audio/*"},
		}},
	}
}
