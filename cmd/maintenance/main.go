// Command maintenance runs operational tasks against the database:
//
//	maintenance migrate
//	maintenance seed
//	maintenance create-admin -email admin@example.com -password secret123 -name Admin
//	maintenance purge-sessions
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gorm.io/gorm"

	"jobboard_backend/internal/domain/entity"
	adminadapters "jobboard_backend/internal/feature/admin/adapters"
	adminusecase "jobboard_backend/internal/feature/admin/usecase"
	authadapters "jobboard_backend/internal/feature/auth/adapters"
	authusecase "jobboard_backend/internal/feature/auth/usecase"
	companyadapters "jobboard_backend/internal/feature/company/adapters"
	"jobboard_backend/internal/platform/config"
	infradb "jobboard_backend/internal/platform/db"
	jwtmw "jobboard_backend/internal/platform/jwt"
	"jobboard_backend/internal/platform/mailer"
	"jobboard_backend/internal/platform/session"
)

const usage = "usage: maintenance <migrate|seed|create-admin|purge-sessions> [flags]"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.NewLogger())

	dbCfg, err := infradb.LoadConfigFromEnv()
	if err != nil {
		slog.Error("failed to read database config", "error", err)
		os.Exit(1)
	}
	db, err := infradb.Open(dbCfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = infradb.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, db, cfg, os.Args[1], os.Args[2:]); err != nil {
		slog.Error("maintenance failed", "command", os.Args[1], "error", err)
		cancel()
		_ = infradb.Close(db)
		os.Exit(1)
	}
	slog.Info("maintenance ok", "command", os.Args[1])
}

func run(ctx context.Context, db *gorm.DB, cfg *config.Config, cmd string, args []string) error {
	switch cmd {
	case "migrate":
		return infradb.Migrate(db)
	case "seed":
		if err := infradb.Migrate(db); err != nil {
			return err
		}
		return seed(ctx, db, cfg)
	case "create-admin":
		fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)
		email := fs.String("email", "", "admin email")
		password := fs.String("password", "", "admin password (min 8 characters)")
		name := fs.String("name", "Administrator", "display name")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *email == "" || *password == "" {
			return errors.New("-email and -password are required")
		}
		user, err := newAuthUsecase(db, cfg).CreateAdmin(ctx, *email, *password, *name)
		if err != nil {
			return err
		}
		slog.Info("admin created", "id", user.ID, "email", user.Email)
		return nil
	case "purge-sessions":
		n, err := session.NewSessionSQL(db).DeleteExpired(ctx)
		if err != nil {
			return err
		}
		slog.Info("expired revocations removed", "count", n)
		return nil
	default:
		return fmt.Errorf("unknown command %q; %s", cmd, usage)
	}
}

// accounts is the part of the auth usecase the CLI needs.
type accounts interface {
	CreateAdmin(ctx context.Context, email, password, name string) (*entity.User, error)
	RegisterCandidate(ctx context.Context, in authusecase.CandidateRegistration) (*entity.User, error)
	RegisterCompany(ctx context.Context, in authusecase.CompanyRegistration) (*entity.User, error)
}

// newAuthUsecase builds the same auth usecase the API uses, so passwords are
// hashed identically. Verification mail is only logged.
func newAuthUsecase(db *gorm.DB, cfg *config.Config) accounts {
	return authusecase.NewAuthUsecase(
		authadapters.NewUserGorm(db),
		jwtmw.NewManager(cfg.Session.Secret, cfg.Session.TTL),
		nil,
		mailer.LogMailer{},
		cfg.BaseURL,
	)
}

// seed creates the demo fixture: one admin, one approved company and one
// candidate. Accounts that already exist are left alone.
func seed(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	auth := newAuthUsecase(db, cfg)

	if _, err := auth.CreateAdmin(ctx, "admin@jobboard.local", "admin12345", "Administrator"); skip(err) != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	_, err := auth.RegisterCompany(ctx, authusecase.CompanyRegistration{
		Email:       "rh@techcorp.local",
		Password:    "company12345",
		Name:        "TechCorp Soluções",
		Slug:        "techcorp-solucoes",
		Description: "Software house",
	})
	if skip(err) != nil {
		return fmt.Errorf("seed company: %w", err)
	}
	company, err := companyadapters.NewCompanyGorm(db).FindBySlug(ctx, "techcorp-solucoes")
	if err != nil {
		return fmt.Errorf("seed company: %w", err)
	}
	admin := adminusecase.NewAdminUsecase(adminadapters.NewAdminGorm(db), nil)
	if _, err := admin.SetCompanyApproval(ctx, company.ID, true); err != nil {
		return fmt.Errorf("approve company: %w", err)
	}

	_, err = auth.RegisterCandidate(ctx, authusecase.CandidateRegistration{
		Email:    "candidato@jobboard.local",
		Password: "candidate12345",
		Name:     "Maria Silva",
		City:     "São Paulo",
		State:    "SP",
	})
	if skip(err) != nil {
		return fmt.Errorf("seed candidate: %w", err)
	}
	return nil
}

// skip treats an existing account as success so seed can be rerun.
func skip(err error) error {
	if errors.Is(err, authusecase.ErrEmailAlreadyExists) {
		return nil
	}
	return err
}
