package storage

import "time"

type SaveRecord struct {
	ID      int64
	DocKey  string
	SavedAt time.Time
	Size    int
	Session string
}
