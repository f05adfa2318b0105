package email

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// FileSender writes messages as .eml files instead of sending them.
type FileSender struct {
	from string
	dir  string
	now  func() time.Time
}

// NewFileSender creates a sender that stores messages in dir. The directory
// is created on first use.
func NewFileSender(from, dir string) *FileSender {
	return &FileSender{from: from, dir: dir, now: time.Now}
}

// Send writes the message to <dir>/<timestamp>_<subject>.eml.
func (s *FileSender) Send(to []string, subject, body string) error {
	msg, err := NewMessage(s.from, to, subject, body)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Join(ErrFailedToSendEmail, fmt.Errorf("create directory: %w", err))
	}

	name := fmt.Sprintf("%s_%s.eml", s.now().Format("2006_01_02_150405"), sanitizeFilename(subject))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, fmt.Errorf("create file: %w", err))
	}
	defer f.Close()

	if _, err := msg.WriteTo(f); err != nil {
		return errors.Join(ErrFailedToSendEmail, fmt.Errorf("write message: %w", err))
	}

	return nil
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}

	if s == "" {
		s = "email"
	}

	return strings.ToLower(s)
}
