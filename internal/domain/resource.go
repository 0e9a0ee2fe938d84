package domain

import "time"

// Resource is a crew, subcontractor or person that phases can be assigned to.
type Resource struct {
	ID        string
	Name      string
	Role      string
	CreatedAt time.Time
}
