package application

import (
	"context"
	"fmt"
	"unicode"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/cafehub/pkg/mailer"
)

const contactSubject = "Cafe webpage feedback"

// ContactService relays contact-form messages to the site owner. Delivery
// is best-effort: a failed send is reported to the submitter and the
// message is gone; nothing is queued or stored.
type ContactService struct {
	Mail   mailer.Sender
	To     string
	Logger *logrus.Logger
}

func NewContactService(mail mailer.Sender, to string, logger *logrus.Logger) *ContactService {
	return &ContactService{Mail: mail, To: to, Logger: logger}
}

// Notify sends the message. Any failure, including an unconfigured
// relay, comes back as ErrDeliveryFailed.
func (s *ContactService) Notify(ctx context.Context, email, name, text string) error {
	if s.Mail == nil || s.To == "" {
		return ErrDeliveryFailed
	}
	body := fmt.Sprintf("%s with email: %s has written:\n\n%s", capitalize(name), email, text)
	if err := s.Mail.Send(ctx, s.To, contactSubject, body, ""); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("from", email).Warn("contact relay failed")
		}
		return ErrDeliveryFailed
	}
	return nil
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
