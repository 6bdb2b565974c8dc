package domain

import "time"

// embedded in every table
type Model struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}
