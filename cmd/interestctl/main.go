package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"interest/config"
	"interest/internal/domain/entity"
	"interest/internal/infra/auth"
	logs "interest/internal/infra/log"
	"interest/internal/infra/persistence/migration"
	"interest/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Supported subcommands:
// - migrate: Apply or roll back the database schema
// - token:   Issue an access token for the admin pages

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	migrateDown := migrateCmd.Bool("down", false, "Roll back every applied migration instead of applying pending ones")

	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)
	tokenUser := tokenCmd.Int64("user", 0, "User ID to issue the token for")
	tokenRoles := tokenCmd.String("roles", entity.RoleAdmin.String(), "Comma-separated roles (admin, shop_manager, customer)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "migrate":
		if err = migrateCmd.Parse(os.Args[2:]); err == nil {
			err = runMigrate(*migrateDown)
		}
	case "token":
		if err = tokenCmd.Parse(os.Args[2:]); err == nil {
			err = runToken(*tokenUser, *tokenRoles)
		}
	case "help", "-h", "--help":
		printUsage()

		return
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: interestctl <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  migrate   Apply pending migrations (-down to roll back)")
	fmt.Println("  token     Issue an access token (-user ID -roles admin)")
}

type migrateParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Logger *slog.Logger
}

// runMigrate starts only the database, runs the migration and stops again.
func runMigrate(down bool) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(func(params migrateParams) {
			params.Append(fx.Hook{
				OnStart: func(context.Context) error {
					if down {
						return migration.Down(params.DB, params.Logger)
					}

					return migration.Up(params.DB, params.Logger)
				},
			})
		}),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "migration failed")
	}

	return errors.WithStack(app.Stop(ctx))
}

func runToken(userID int64, rawRoles string) error {
	if userID <= 0 {
		return errors.New("-user must be a positive ID")
	}

	parts := strings.Split(rawRoles, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	roles := entity.RolesFromStrings(parts)
	if len(roles) == 0 {
		return errors.Errorf("no valid role in %q", rawRoles)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := tokenSvc.GenerateAccessToken(userID, roles.ToStrings())
	if err != nil {
		return err
	}

	fmt.Println(token)

	return nil
}
