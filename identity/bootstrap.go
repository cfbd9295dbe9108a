package identity

import (
	"context"
	"errors"
	"time"

	"github.com/ankit/temple-ledger-go/config"
	"github.com/ankit/temple-ledger-go/models"
	"github.com/ankit/temple-ledger-go/utils"
)

// DefaultAdminPassword is the legacy fallback used when ADMIN_PASSWORD is not
// set. Deployments should always set their own.
const DefaultAdminPassword = "adminpassword"

// EnsureDefaultAdmin guarantees the admin account exists at startup. The
// password comes from ADMIN_PASSWORD; the fixed legacy fallback is kept for
// compatibility but loudly flagged, since a known credential on a live
// deployment is an open door.
func EnsureDefaultAdmin(ctx context.Context, store Store, adminPassword string) error {
	if _, err := store.FindByUsername(ctx, "admin"); err == nil {
		return nil
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	password := adminPassword
	if password == "" {
		password = DefaultAdminPassword
		config.GetLogger().Warn("ADMIN_PASSWORD not set, bootstrapping admin with the default credential; change it before exposing this server")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = store.Insert(ctx, models.User{
		Username:     "admin",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	})
	if errors.Is(err, ErrUserExists) {
		return nil
	}
	if err != nil {
		return err
	}
	config.GetLogger().Info("default admin user created")
	return nil
}
