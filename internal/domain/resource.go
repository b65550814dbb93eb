package domain

import "strings"

// Resource is a staff member that owns a column in the schedule grid
type Resource struct {
	ID        string
	ShortName *string
	FullName  *string
	FirstName *string
	LastName  *string
	PhotoURL  *string
	Color     *string
}

var resourceNameChain = []func(Resource) string{
	func(r Resource) string { return derefString(r.ShortName) },
	func(r Resource) string { return derefString(r.FullName) },
	func(r Resource) string {
		return strings.TrimSpace(derefString(r.FirstName) + " " + derefString(r.LastName))
	},
}

// DisplayName resolves short name, then full name, then "first last", then a fallback literal
func (r Resource) DisplayName() string {
	if name := FirstNonEmpty(r, resourceNameChain...); name != "" {
		return name
	}
	return FallbackResourceName
}
