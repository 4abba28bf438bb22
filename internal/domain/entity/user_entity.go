package entity

import "time"

// User is the persisted account record. ID is the external identifier,
// decoupled from the storage primary key. PasswordHash must never be
// serialized in a response body. All fields are immutable after creation.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
