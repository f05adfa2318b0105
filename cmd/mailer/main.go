package main

import (
	"context"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/happy-hour-mailer/internal/config"
	"github.com/aliskhannn/happy-hour-mailer/internal/credentials"
	"github.com/aliskhannn/happy-hour-mailer/internal/decision"
	"github.com/aliskhannn/happy-hour-mailer/internal/placeholder"
	settingsrepo "github.com/aliskhannn/happy-hour-mailer/internal/repository/settings"
	templaterepo "github.com/aliskhannn/happy-hour-mailer/internal/repository/template"
	venuerepo "github.com/aliskhannn/happy-hour-mailer/internal/repository/venue"
	"github.com/aliskhannn/happy-hour-mailer/internal/service/mailer"
	"github.com/aliskhannn/happy-hour-mailer/internal/worker"
	"github.com/aliskhannn/happy-hour-mailer/pkg/email"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()

	// seeded once per run so consecutive runs differ
	now := time.Now().UnixNano()
	rng := rand.New(rand.NewPCG(uint64(now), uint64(os.Getpid())))

	notifiers := make(map[string]mailer.Notifier, 1)

	switch cfg.Delivery.Channel {
	case "email":
		pwd, err := credentials.NewResolver().Resolve(credentials.Source{
			Kind: credentials.Kind(cfg.Email.PasswordSource),
			Env:  cfg.Email.PasswordEnv,
			File: cfg.Email.PasswordFile,
		})
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to get smtp password")
		}

		notifiers["email"] = email.NewClient(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.Username,
			pwd,
			cfg.Email.From,
			cfg.Email.Timeout,
		)
	case "file":
		notifiers["file"] = email.NewFileSender(cfg.Email.From, cfg.Delivery.OutputDir)
	}

	filler := placeholder.NewFiller(rng)
	filler.Marker = cfg.Template.Marker
	filler.Fallback = cfg.Template.Fallback
	filler.TrimPunctuation = cfg.Template.TrimPunctuation

	service := mailer.NewService(
		venuerepo.NewRepository(cfg.Files.Venues),
		settingsrepo.NewRepository(cfg.Files.Settings, cfg.Template.PersonalityKey),
		templaterepo.NewRepository(cfg.Files.Template),
		decision.NewMaker(rng),
		filler,
		notifiers,
		mailer.Options{
			Recipients:     cfg.Email.Recipients,
			Subject:        cfg.Email.Subject,
			DecisionToken:  cfg.Decision.Token,
			PersonalityKey: cfg.Template.PersonalityKey,
		},
	)

	notifier := worker.NewNotifier(service, os.Stdout)

	if err := notifier.Run(ctx, cfg.Delivery.Channel); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to prepare message")
	}
}
