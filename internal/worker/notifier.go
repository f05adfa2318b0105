package worker

import (
	"context"
	"fmt"
	"io"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/happy-hour-mailer/internal/model"
)

const (
	sentNotice   = "successfully sent the mail"
	failedNotice = "failed to send mail"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/worker/mock.go -package=mocks
type mailService interface {
	Compose() (model.Message, error)
	Send(msg model.Message, channel string) error
}

// Notifier composes the message once and hands it to the delivery channel.
type Notifier struct {
	service mailService
	out     io.Writer
}

func NewNotifier(s mailService, out io.Writer) *Notifier {
	return &Notifier{
		service: s,
		out:     out,
	}
}

// Run composes and sends a single message. Compose errors are returned.
// Delivery errors are logged and reported on out; they never fail the run.
func (n *Notifier) Run(ctx context.Context, channel string) error {
	msg, err := n.service.Compose()
	if err != nil {
		return fmt.Errorf("compose message: %w", err)
	}

	zlog.Logger.Info().Msgf("message %s composed for %d recipients", msg.ID, len(msg.To))

	select {
	case <-ctx.Done():
		zlog.Logger.Warn().Err(ctx.Err()).Msgf("message %s not sent", msg.ID)
		fmt.Fprintln(n.out, failedNotice)
		return nil
	default:
	}

	if err := n.service.Send(msg, channel); err != nil {
		zlog.Logger.Error().Err(err).Str("channel", channel).Msgf("failed to send message %s", msg.ID)
		fmt.Fprintln(n.out, failedNotice)
		return nil
	}

	zlog.Logger.Info().Str("channel", channel).Msgf("message %s sent", msg.ID)
	fmt.Fprintln(n.out, sentNotice)

	return nil
}
