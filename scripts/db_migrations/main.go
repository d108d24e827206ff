package main

import (
	"database/sql"
	"errors"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	server_config "github.com/carson-networks/mpesa-sync/internal/config"
	"github.com/carson-networks/mpesa-sync/migrations"
)

func main() {
	app := &cli.App{
		Name:  "db_migrations",
		Usage: "apply or roll back the user_secrets and transactions schema",
		Commands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "apply every pending migration",
				Action: withMigrator(runUp),
			},
			{
				Name:  "down",
				Usage: "roll back migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back, 0 for all"},
				},
				Action: withMigrator(runDown),
			},
			{
				Name:   "version",
				Usage:  "print the current schema version",
				Action: withMigrator(runVersion),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("db_migrations")
	}
}

func withMigrator(action func(*cli.Context, *migrate.Migrate) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		env, err := server_config.ProcessEnvironmentVariables()
		if err != nil {
			return err
		}

		db, err := sql.Open("postgres", env.PostgresConnectionString())
		if err != nil {
			return err
		}

		m, err := migrations.New(db)
		if err != nil {
			db.Close()
			return err
		}
		defer m.Close()

		return action(c, m)
	}
}

func currentVersion(m *migrate.Migrate) (uint, bool, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func runUp(c *cli.Context, m *migrate.Migrate) error {
	preMigrationVersion, _, err := currentVersion(m)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	postMigrationVersion, _, err := currentVersion(m)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
	}).Info("Migration status")
	return nil
}

func runDown(c *cli.Context, m *migrate.Migrate) error {
	steps := c.Int("steps")
	if steps < 0 {
		return errors.New("steps must not be negative")
	}

	var err error
	if steps == 0 {
		err = m.Down()
	} else {
		err = m.Steps(-steps)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	version, _, err := currentVersion(m)
	if err != nil {
		return err
	}
	logrus.WithField("version", version).Info("Rollback status")
	return nil
}

func runVersion(c *cli.Context, m *migrate.Migrate) error {
	version, dirty, err := currentVersion(m)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("Schema version")
	return nil
}
