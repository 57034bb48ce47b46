// Command createsuperuser creates an active staff superuser account.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"recipe-app/internal/database"
	"recipe-app/internal/logging"
	"recipe-app/internal/service"
	"recipe-app/internal/store"

	"github.com/caarlos0/env/v10"
	"github.com/rs/zerolog/log"
)

type settings struct {
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	Password    string `env:"SUPERUSER_PASSWORD"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

var (
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	createSuperuser = service.CreateSuperuser
	stderr          io.Writer = os.Stderr
	exitFunc                  = os.Exit
)

var errEmailTaken = errors.New("a user with this email already exists")

func run(args []string) error {
	var s settings
	if err := env.Parse(&s); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	log.Logger = logging.New(s.LogLevel, "console", stderr)

	fs := flag.NewFlagSet("createsuperuser", flag.ContinueOnError)
	fs.SetOutput(stderr)
	email := fs.String("email", "", "superuser email")
	password := fs.String("password", s.Password, "superuser password (default $SUPERUSER_PASSWORD)")
	name := fs.String("name", "", "display name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *password == "" {
		return errors.New("password is required")
	}

	ctx := context.Background()
	db, err := newPgxPool(ctx, s.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	if err := runMigrationsFn(s.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	u, err := createSuperuser(ctx, db, *email, *password, *name)
	if errors.Is(err, store.ErrDuplicate) {
		return errEmailTaken
	}
	if err != nil {
		return err
	}
	log.Info().Int("id", u.ID).Str("email", u.Email).Msg("superuser created")
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("createsuperuser failed")
		exitFunc(1)
	}
}
