package models

import (
	"strings"
)

type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleDistributor   Role = "distributor"
	RoleCorporate     Role = "corporate"
)

// NormalizeRole maps a stored role string onto one of the three known roles.
// Comparison is case-insensitive; anything unrecognized (or empty) falls back
// to corporate, the least privileged role.
func NormalizeRole(role string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(role))) {
	case RoleAdministrator:
		return RoleAdministrator
	case RoleDistributor:
		return RoleDistributor
	case RoleCorporate:
		return RoleCorporate
	}
	return RoleCorporate
}
