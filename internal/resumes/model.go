package resumes

import (
	"encoding/json"
	"time"
)

// Resume is a user-owned document. Data is an opaque JSON payload; the
// backend stores and returns it unchanged and never assumes a shape.
type Resume struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Title     string          `json:"title"`
	Data      json.RawMessage `json:"resumeData"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
