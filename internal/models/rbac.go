package models

// Role identifiers carried in token claims. Route guards compare them by
// exact equality: holding RoleCharacters does not grant access to a route
// that requires RoleFactions, and vice versa.
const (
	RoleCharacters = 1
	RoleEquipment  = 2
	RoleFactions   = 3
)

// DefaultRole is assigned at registration when no role is requested.
// There is no self-elevation after creation.
const DefaultRole = RoleFactions
