// Package email delivers plain-text messages over SMTP or, for dry runs, to
// .eml files on disk.
package email

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/mail.v2"
)

var (
	ErrFailedToSendEmail = errors.New("failed to send email")
	ErrNoRecipients      = errors.New("no recipients")
)

// DefaultSMTPPort is the submission port, upgraded with STARTTLS.
const DefaultSMTPPort = 587

type dialer interface {
	DialAndSend(m ...*mail.Message) error
}

// Client sends mail through an SMTP relay.
type Client struct {
	from   string
	dialer dialer
}

// NewClient creates a client that authenticates against smtpHost:smtpPort and
// requires a STARTTLS upgrade before sending credentials.
func NewClient(smtpHost string, smtpPort int, username, password, from string, timeout time.Duration) *Client {
	d := mail.NewDialer(smtpHost, smtpPort, username, password)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.RetryFailure = false
	if timeout > 0 {
		d.Timeout = timeout
	}

	return &Client{from: from, dialer: d}
}

// Send delivers one message to all recipients in a single SMTP transaction.
func (c *Client) Send(to []string, subject, body string) error {
	msg, err := NewMessage(c.from, to, subject, body)
	if err != nil {
		return err
	}

	if err := c.dialer.DialAndSend(msg); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	return nil
}

// NewMessage builds a text/plain message with Date and Message-ID headers.
func NewMessage(from string, to []string, subject, body string) (*mail.Message, error) {
	if len(to) == 0 {
		return nil, ErrNoRecipients
	}

	message := mail.NewMessage()

	message.SetHeader("From", from)
	message.SetHeader("To", to...)
	message.SetHeader("Subject", subject)
	message.SetHeader("Message-ID", fmt.Sprintf("<%s@%s>", uuid.New(), messageIDHost(from)))
	message.SetDateHeader("Date", time.Now())

	message.SetBody("text/plain", body)

	return message, nil
}

func messageIDHost(from string) string {
	if i := strings.LastIndex(from, "@"); i >= 0 && i < len(from)-1 {
		return strings.Trim(from[i+1:], "> ")
	}
	return "localhost"
}
