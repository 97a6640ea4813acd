package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Matches keys (quoted string followed by a colon), string values, literals and numbers.
var jsonTokenRegex = regexp.MustCompile(`("(\\u[a-zA-Z0-9]{4}|\\[^u]|[^\\"])*"(\s*:)?|\b(true|false|null)\b|-?\d+(?:\.\d*)?(?:[eE][+\-]?\d+)?)`)

// HighlightJSON applies ANSI colours to a JSON document.
func HighlightJSON(jsonStr string) string {
	if !Enabled() {
		return jsonStr
	}

	return jsonTokenRegex.ReplaceAllStringFunc(jsonStr, func(token string) string {
		switch {
		case strings.HasSuffix(token, ":"):
			return fmt.Sprintf("%s%s%s:", Blue, token[:len(token)-1], ResetCode)
		case strings.HasPrefix(token, "\""):
			return fmt.Sprintf("%s%s%s", Green, token, ResetCode)
		case token == "true" || token == "false":
			return fmt.Sprintf("%s%s%s", Yellow, token, ResetCode)
		case token == "null":
			return fmt.Sprintf("%s%s%s", DimCode, token, ResetCode)
		default:
			return fmt.Sprintf("%s%s%s", Purple, token, ResetCode)
		}
	})
}

// PrettyFormat marshals v to indented JSON and colourises it.
func PrettyFormat(v interface{}) string {
	var str string
	switch t := v.(type) {
	case []byte:
		str = string(t)
	case string:
		str = t
	default:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Sprintf("%+v", v)
		}
		str = string(b)
	}

	return HighlightJSON(str)
}

// PrettyPrint writes the PrettyFormatted JSON to w with a newline.
func PrettyPrint(w io.Writer, v interface{}) {
	fmt.Fprintln(w, PrettyFormat(v))
}
