// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the sole identity record. Email is its unique key.
type Account struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Location     string    `json:"location,omitempty"`
	Contact      string    `json:"contact,omitempty"`
	PasswordHash string    `json:"-"` // Never rendered; only the hasher reads it.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AccountPatch carries the fields an update may change. Nil fields are left untouched.
type AccountPatch struct {
	Name     *string
	Location *string
	Contact  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p AccountPatch) IsEmpty() bool {
	return p.Name == nil && p.Location == nil && p.Contact == nil
}

// Fields returns the present fields keyed by their persisted column name.
func (p AccountPatch) Fields() map[string]any {
	fields := make(map[string]any, 3)
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Location != nil {
		fields["location"] = *p.Location
	}
	if p.Contact != nil {
		fields["contact"] = *p.Contact
	}

	return fields
}

// Apply merges the patch into the account in place and reports whether any value changed.
func (p AccountPatch) Apply(account *Account) bool {
	changed := false
	if p.Name != nil && *p.Name != account.Name {
		account.Name = *p.Name
		changed = true
	}
	if p.Location != nil && *p.Location != account.Location {
		account.Location = *p.Location
		changed = true
	}
	if p.Contact != nil && *p.Contact != account.Contact {
		account.Contact = *p.Contact
		changed = true
	}

	return changed
}
