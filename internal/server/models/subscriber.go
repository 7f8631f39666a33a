// Package models holds the persisted data shapes shared by repositories and
// services.
package models

import "time"

// Subscriber is a signup row. Email is the identity: repeat signups update
// the mutable fields in place but keep the original CreatedAt.
type Subscriber struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Mobile    string
	OptEmail  bool
	OptSMS    bool
	CreatedAt time.Time
}
