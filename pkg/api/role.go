package api

import "fmt"

// Role is the conversational turn an input attaches to.
type Role string

const (
	User      Role = "user"
	Assistant Role = "assistant"
	Tool      Role = "tool"
)

// Roles lists every role in a stable order.
var Roles = []Role{User, Assistant, Tool}

func (r Role) Valid() bool {
	switch r {
	case User, Assistant, Tool:
		return true
	}
	return false
}

// ParseRole accepts the exact lowercase role names only.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
