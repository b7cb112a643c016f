package domain

import "time"

// ResolveTimezone picks the timezone for a user from their ordered role/group
// names: the first role with a configured zone wins, falling back to def.
// Pure function over its inputs so it can be tested without a Slack client.
func ResolveTimezone(roleNames []string, zoneByRole map[string]*time.Location, def *time.Location) *time.Location {
	for _, role := range roleNames {
		if loc, ok := zoneByRole[role]; ok {
			return loc
		}
	}
	return def
}
