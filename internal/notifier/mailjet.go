package notifier

import (
	"context"
	"fmt"

	mailjet "github.com/mailjet/mailjet-apiv3-go/v4"

	"github.com/r-ising/molzberg-monitor/internal/course"
)

// MailjetNotifier sends notification emails through the Mailjet Send API.
type MailjetNotifier struct {
	client    *mailjet.Client
	sender    string
	recipient string
	sourceURL string
}

// NewMailjet creates a Mailjet notifier. The sender address must be verified
// with Mailjet or delivery will be rejected.
func NewMailjet(publicKey, privateKey, sender, recipient, sourceURL string) (*MailjetNotifier, error) {
	if publicKey == "" || privateKey == "" || sender == "" || recipient == "" {
		return nil, fmt.Errorf("missing required Mailjet configuration")
	}

	return &MailjetNotifier{
		client:    mailjet.NewMailjetClient(publicKey, privateKey),
		sender:    sender,
		recipient: recipient,
		sourceURL: sourceURL,
	}, nil
}

// Notify sends one email listing all new courses.
func (n *MailjetNotifier) Notify(ctx context.Context, newCourses []course.Course) error {
	if len(newCourses) == 0 {
		return nil
	}

	messages := mailjet.MessagesV31{
		Info: []mailjet.InfoMessagesV31{
			{
				From: &mailjet.RecipientV31{
					Email: n.sender,
					Name:  "Molzberg Monitor",
				},
				To: &mailjet.RecipientsV31{
					{Email: n.recipient},
				},
				Subject:  Subject(len(newCourses)),
				TextPart: Body(n.sourceURL, newCourses),
			},
		},
	}

	if _, err := n.client.SendMailV31(&messages, mailjet.WithContext(ctx)); err != nil {
		return fmt.Errorf("sending notification email: %w", err)
	}

	return nil
}
