package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/aurabyshenoi/portfolio-api/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// SendContactNotification emails the studio inbox about a new submission.
func (m *Mailer) SendContactNotification(ctx context.Context, c *domain.Contact) error {
	if m.config.NotifyAddress == "" {
		return nil
	}

	subject := fmt.Sprintf("New contact submission %s", c.ContactNumber)
	return m.Send(ctx, m.config.NotifyAddress, subject, contactNotificationBody(c))
}

// SendWelcome emails a short confirmation to a fresh newsletter subscriber.
func (m *Mailer) SendWelcome(ctx context.Context, email, source string) error {
	body := fmt.Sprintf(
		"Hello,\r\n\r\n"+
			"Thank you for subscribing to the AuraByShenoi newsletter via %s.\r\n"+
			"You will hear from us when new work is released.\r\n\r\n"+
			"— AuraByShenoi\r\n",
		titleCaser.String(source),
	)
	return m.Send(ctx, email, "Welcome to the AuraByShenoi newsletter", body)
}

func contactNotificationBody(c *domain.Contact) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Contact number: %s\r\n", c.ContactNumber)
	fmt.Fprintf(&b, "Name: %s\r\n", c.Name)
	fmt.Fprintf(&b, "Email: %s\r\n", c.Email)
	if c.Phone != nil {
		fmt.Fprintf(&b, "Phone: %s\r\n", *c.Phone)
	}
	if c.ArtworkReference != nil {
		fmt.Fprintf(&b, "Artwork reference: %s\r\n", *c.ArtworkReference)
	}
	fmt.Fprintf(&b, "Submitted at: %s\r\n", c.SubmittedAt.Format("2006-01-02 15:04:05 MST"))
	b.WriteString("\r\n")
	b.WriteString(c.Message)
	b.WriteString("\r\n")
	return b.String()
}
