package course

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"time"
)

// Course represents one swim course offering extracted from the Molzberg page.
// All fields are opaque text as extracted; no numeric or temporal parsing is done.
type Course struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	DateTime      string    `json:"date_time,omitempty"`
	Price         string    `json:"price,omitempty"`
	Location      string    `json:"location,omitempty"`
	Participants  string    `json:"participants,omitempty"`
	BookingStatus string    `json:"booking_status,omitempty"`
	BookingLink   string    `json:"booking_link,omitempty"`
	Description   string    `json:"description,omitempty"`
	Instructor    string    `json:"instructor,omitempty"`
	FirstSeen     time.Time `json:"first_seen"`
}

// Normalize lowercases, trims, and collapses internal whitespace so that
// trivial formatting differences on the source page do not change identity.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Identity creates a deterministic ID for a course from its normalized name
// and schedule text. When the schedule text is empty the identity falls back
// to the name alone, so two same-named courses without dates will collide.
func Identity(name, dateTime string) string {
	key := Normalize(name)
	if dt := Normalize(dateTime); dt != "" {
		key += "|" + dt
	}
	h := sha1.New()
	h.Write([]byte(key))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Stamp populates the course's ID from its identity fields and records when
// it was first seen. FirstSeen is preserved if already set.
func (c *Course) Stamp(seen time.Time) {
	c.ID = Identity(c.Name, c.DateTime)
	if c.FirstSeen.IsZero() {
		c.FirstSeen = seen
	}
}
