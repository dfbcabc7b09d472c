package model

import "strings"

// Role is the closed set of access levels a user can hold.  Roles are
// stored lowercase; anything arriving from the outside (identity
// provider responses, JWT claims) must pass through NormalizeRole
// before use.
type Role string

const (
	RoleUser  Role = "user"
	RoleClerk Role = "clerk"
	RoleAdmin Role = "admin"
)

// NormalizeRole lowercases a raw role string and reports whether it
// names a known role.  Identity providers are free to return roles in
// any case (the previous backend used UPPER-CASE), so every inbound
// role goes through here.
func NormalizeRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleUser:
		return RoleUser, true
	case RoleClerk:
		return RoleClerk, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

// User is the identity record held by the user store and mirrored
// into the durable session slot.  Password material never appears
// here; the store keeps hashes separately.
//
// Fields:
//  ID    – identity record identifier.
//  Name  – display name.
//  Email – unique login email, stored lowercase.
//  Role  – access level, one of the Role constants.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
