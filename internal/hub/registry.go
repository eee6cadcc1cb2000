package hub

import "chathub/pkg/chat"

// Registry maps live connection ids to display names. It is the single
// source of truth for who is online. Not safe for concurrent use on its
// own; the Hub serializes all access.
type Registry struct {
	users map[string]string
}

func NewRegistry() *Registry {
	return &Registry{users: make(map[string]string)}
}

// Register inserts or overwrites the entry for connID.
func (r *Registry) Register(connID, username string) {
	r.users[connID] = username
}

// Unregister removes the entry for connID. Removing an unknown id is a
// no-op.
func (r *Registry) Unregister(connID string) {
	delete(r.users, connID)
}

// Lookup returns the display name bound to connID.
func (r *Registry) Lookup(connID string) (string, bool) {
	name, ok := r.users[connID]
	return name, ok
}

// Snapshot returns the current presence list. Order is unspecified.
func (r *Registry) Snapshot() []chat.UserInfo {
	users := make([]chat.UserInfo, 0, len(r.users))
	for id, name := range r.users {
		users = append(users, chat.UserInfo{UserID: id, Username: name})
	}
	return users
}

func (r *Registry) Count() int {
	return len(r.users)
}
