// Package models defines server-side data models persisted by the identity store.
package models

// User is the identity record of one player.
//
// UserUUID is generated once and never changes. AccessToken holds the only
// valid bearer credential; each successful authentication overwrites it.
// ServerID is set by join and only read back by hasJoined.
type User struct {
	UserUUID    string
	UserName    string
	Password    string // stored verifier form; empty for federated identities
	AccessToken string
	ServerID    string
}
