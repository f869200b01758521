package notifier

import (
	"fmt"
	"strings"

	"github.com/r-ising/molzberg-monitor/internal/course"
)

// Subject builds the notification subject line.
func Subject(count int) string {
	return fmt.Sprintf("🏊 New Swim Courses Available at Freizeitbad Molzberg (%d found)", count)
}

// Body builds the plain-text notification body, enumerating each new course's
// available fields plus its computed identity.
func Body(sourceURL string, newCourses []course.Course) string {
	var b strings.Builder

	b.WriteString("New swim courses have been detected at Freizeitbad Molzberg!\n\n")
	fmt.Fprintf(&b, "Website: %s\n\n", sourceURL)
	b.WriteString("New Courses:\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for i, c := range newCourses {
		fmt.Fprintf(&b, "%d. Course: %s\n", i+1, c.Name)
		if c.Price != "" {
			fmt.Fprintf(&b, "   Price: %s\n", c.Price)
		}
		if c.DateTime != "" {
			fmt.Fprintf(&b, "   Schedule: %s\n", c.DateTime)
		}
		if c.Location != "" {
			fmt.Fprintf(&b, "   Location: %s\n", c.Location)
		}
		if c.Participants != "" {
			fmt.Fprintf(&b, "   Participants: %s\n", c.Participants)
		}
		if c.Instructor != "" {
			fmt.Fprintf(&b, "   Instructor: %s\n", c.Instructor)
		}
		if c.BookingStatus != "" {
			fmt.Fprintf(&b, "   Booking: %s\n", c.BookingStatus)
		}
		if c.BookingLink != "" {
			fmt.Fprintf(&b, "   Registration Form: %s\n", c.BookingLink)
		}
		if c.Description != "" {
			fmt.Fprintf(&b, "   Details: %s\n", c.Description)
		}
		fmt.Fprintf(&b, "   Fingerprint: %s\n", c.ID)
		b.WriteString("\n")
	}

	b.WriteString("\nPlease visit the website to register for the courses.\n")
	b.WriteString("\n---\nThis is an automated notification from the Molzberg Monitor.")

	return b.String()
}
