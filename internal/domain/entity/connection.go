// Package entity contains the core business objects of the project.
package entity

// ConnectionStatus is the social relationship between two users as reported
// by the external social graph. The visibility engine only ever reads it.
type ConnectionStatus string

const (
	// ConnectionNone means no relationship exists between the two users.
	ConnectionNone ConnectionStatus = "none"
	// ConnectionPending means a request was sent but not yet accepted.
	ConnectionPending ConnectionStatus = "pending"
	// ConnectionConnected means the relationship is mutual and accepted.
	ConnectionConnected ConnectionStatus = "connected"
)

// IsConnected reports whether the relationship grants connection privileges.
// A pending request grants nothing.
func (s ConnectionStatus) IsConnected() bool {
	return s == ConnectionConnected
}
