package mailer

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/happy-hour-mailer/internal/decision"
	"github.com/aliskhannn/happy-hour-mailer/internal/model"
	"github.com/aliskhannn/happy-hour-mailer/internal/placeholder"
	"github.com/aliskhannn/happy-hour-mailer/internal/settings"
)

var ErrUnknownChannel = errors.New("unknown channel")

//go:generate mockgen -source=service.go -destination=../../mocks/service/mailer/mock.go -package=mocks
type venueRepository interface {
	GetVenues() ([]model.Venue, error)
}

type settingsRepository interface {
	GetSettings() (settings.Value, error)
}

type templateRepository interface {
	GetTemplate() (string, error)
}

// Notifier delivers a composed message through one channel.
type Notifier interface {
	Send(to []string, subject, body string) error
}

// Options holds the static parts of every message.
type Options struct {
	Recipients     []string
	Subject        string
	DecisionToken  string
	PersonalityKey string
}

type Service struct {
	venues    venueRepository
	settings  settingsRepository
	templates templateRepository
	decider   *decision.Maker
	filler    *placeholder.Filler
	notifiers map[string]Notifier
	opts      Options
}

func NewService(
	venueRepo venueRepository,
	settingsRepo settingsRepository,
	templateRepo templateRepository,
	decider *decision.Maker,
	filler *placeholder.Filler,
	notifiers map[string]Notifier,
	opts Options,
) *Service {
	return &Service{
		venues:    venueRepo,
		settings:  settingsRepo,
		templates: templateRepo,
		decider:   decider,
		filler:    filler,
		notifiers: notifiers,
		opts:      opts,
	}
}

// Compose picks a venue, fills the template and returns the message to send.
func (s *Service) Compose() (model.Message, error) {
	venues, err := s.venues.GetVenues()
	if err != nil {
		return model.Message{}, fmt.Errorf("get venues: %w", err)
	}

	options := make([]decision.Option, 0, len(venues))
	for _, v := range venues {
		options = append(options, decision.Option{Name: v.Name, Weight: v.Weight})
	}

	venue, err := s.decider.Choose(options)
	if err != nil {
		return model.Message{}, fmt.Errorf("choose venue: %w", err)
	}
	zlog.Logger.Info().Str("venue", venue).Msg("venue chosen")

	tmpl, err := s.templates.GetTemplate()
	if err != nil {
		return model.Message{}, fmt.Errorf("get template: %w", err)
	}

	cfg, err := s.settings.GetSettings()
	if err != nil {
		return model.Message{}, fmt.Errorf("get settings: %w", err)
	}

	decisions := map[string]string{s.opts.DecisionToken: venue}

	body := s.filler.Fill(tmpl,
		placeholder.MapResolver(decisions),
		placeholder.ValueResolver(cfg),
		placeholder.NestedResolver(cfg, s.opts.PersonalityKey),
	)

	return model.Message{
		ID:      uuid.New(),
		To:      s.opts.Recipients,
		Subject: s.opts.Subject,
		Body:    body,
	}, nil
}

// Send delivers msg through the notifier registered for channel.
func (s *Service) Send(msg model.Message, channel string) error {
	notifier, ok := s.notifiers[channel]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChannel, channel)
	}

	return notifier.Send(msg.To, msg.Subject, msg.Body)
}
