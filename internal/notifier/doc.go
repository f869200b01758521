// Package notifier sends email notifications about newly detected swim
// courses via Mailjet.
package notifier
