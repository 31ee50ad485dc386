// Package domain names the roles and message kinds of the signaling protocol.
package domain

// Role is the part an endpoint plays in the session.
type Role string

const (
	RoleNone     Role = ""
	RoleProducer Role = "producer"
	RoleConsumer Role = "consumer"
)

// Names used by the first deployment (engine client / web page).
const (
	legacyProducer = "unity"
	legacyConsumer = "browser"
)

// ParseRole maps a wire role value to a Role. Unknown values yield RoleNone.
func ParseRole(s string) Role {
	switch s {
	case string(RoleProducer), legacyProducer:
		return RoleProducer
	case string(RoleConsumer), legacyConsumer:
		return RoleConsumer
	}
	return RoleNone
}
