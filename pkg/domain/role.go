package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

type roleKind uint8

const (
	roleUnspecified roleKind = iota
	roleSystem
	roleUser
	roleAssistant
	roleOther
)

// Role is the speaker of a chat message. Known roles are System, User and
// Assistant; any other value received from the API is kept as an opaque
// role so it survives a round trip unchanged.
//
// The zero Role is unspecified.
//
// Compare roles with Equal, or use Key as a map key. == compares the stored
// spelling, so OtherRole("Tool") == OtherRole("tool") is false even though
// the two are Equal.
type Role struct {
	kind roleKind
	raw  string
}

var (
	RoleSystem    = Role{kind: roleSystem}
	RoleUser      = Role{kind: roleUser}
	RoleAssistant = Role{kind: roleAssistant}
)

const (
	roleSystemName    = "system"
	roleUserName      = "user"
	roleAssistantName = "assistant"
)

// OtherRole returns a role that renders raw verbatim. Known names are still
// resolved to their tag, so OtherRole("User") equals RoleUser.
func OtherRole(raw string) Role {
	return RoleFromString(raw)
}

// RoleFromString never fails. Matching against the known roles ignores case,
// unknown strings are preserved as given and "" yields the unspecified role.
func RoleFromString(raw string) Role {
	switch strings.ToLower(raw) {
	case "":
		return Role{}
	case roleSystemName:
		return RoleSystem
	case roleUserName:
		return RoleUser
	case roleAssistantName:
		return RoleAssistant
	default:
		return Role{kind: roleOther, raw: raw}
	}
}

func (r Role) String() string {
	switch r.kind {
	case roleSystem:
		return roleSystemName
	case roleUser:
		return roleUserName
	case roleAssistant:
		return roleAssistantName
	case roleOther:
		return r.raw
	default:
		return ""
	}
}

// Key is the normalized form used for equality. It is safe to use as a map key.
func (r Role) Key() string {
	return strings.ToLower(r.String())
}

func (r Role) Equal(other Role) bool {
	return r.Key() == other.Key()
}

func (r Role) IsKnown() bool {
	return r.kind == roleSystem || r.kind == roleUser || r.kind == roleAssistant
}

func (r Role) IsUnspecified() bool {
	return r.kind == roleUnspecified
}

// OrDefault maps the unspecified role to RoleUser.
func (r Role) OrDefault() Role {
	if r.IsUnspecified() {
		return RoleUser
	}
	return r
}

func (r Role) GoString() string {
	if r.kind == roleOther {
		return fmt.Sprintf("domain.OtherRole(%q)", r.raw)
	}
	if r.IsUnspecified() {
		return "domain.Role{}"
	}
	return "domain.Role" + strings.ToUpper(r.String()[:1]) + r.String()[1:]
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding role: %w", err)
	}
	if raw == nil {
		*r = Role{}
		return nil
	}
	*r = RoleFromString(*raw)
	return nil
}
