// Command seeder creates the default admin/manager/user accounts so a fresh
// deployment has someone who can log in. It is idempotent: if any users
// already exist it exits without writing.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/harviniv9/task-booking-management/internal/adapter/postgres"
	userrepo "github.com/harviniv9/task-booking-management/internal/adapter/postgres/user"
	"github.com/harviniv9/task-booking-management/internal/app"
	"github.com/harviniv9/task-booking-management/internal/config"
	"github.com/harviniv9/task-booking-management/internal/domain"
)

type seedAccount struct {
	name     string
	username string
	password string
	role     domain.UserRole
}

var defaultAccounts = []seedAccount{
	{"Admin", "admin", "admin123", domain.UserRoleAdmin},
	{"Manager", "manager", "manager123", domain.UserRoleManager},
	{"User", "user", "user123", domain.UserRoleUser},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)

	count, err := users.Count(ctx)
	if err != nil {
		logger.Error("count users", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if count > 0 {
		logger.Info("users already present, nothing to seed", slog.Int("count", count))
		return
	}

	now := time.Now().UTC()
	for _, acc := range defaultAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("hash password", slog.String("username", acc.username), slog.String("error", err.Error()))
			os.Exit(1)
		}

		_, err = users.Create(ctx, &domain.User{
			ID:           uuid.New(),
			Name:         acc.name,
			Username:     acc.username,
			PasswordHash: string(hash),
			Role:         acc.role,
			Enabled:      true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			logger.Error("create user", slog.String("username", acc.username), slog.String("error", err.Error()))
			os.Exit(1)
		}

		logger.Info("seeded user",
			slog.String("username", acc.username),
			slog.String("role", acc.role.String()),
		)
	}

	logger.Info("seeded default users")
}
