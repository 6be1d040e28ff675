package services

import (
	"context"
	"fmt"

	"dario.cat/mergo"

	"github.com/elliotbonneville/silt/ent"
	"github.com/elliotbonneville/silt/ent/account"
	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/store"
)

// AccountService manages login identities and their client preferences.
type AccountService struct {
	client *ent.Client
}

// NewAccountService creates a new AccountService.
func NewAccountService(client *ent.Client) *AccountService {
	return &AccountService{client: client}
}

// GetByUsername retrieves an account by its login name.
func (s *AccountService) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	row, err := s.client.Account.Query().
		Where(account.Username(username)).
		Only(ctx)
	if err != nil {
		return nil, wrapNotFound(err, "account", username)
	}
	return &models.Account{
		ID:          row.ID,
		Username:    row.Username,
		CreatedAt:   row.CreatedAt,
		Preferences: row.Preferences,
	}, nil
}

// Create inserts an account.
func (s *AccountService) Create(ctx context.Context, a *models.Account) error {
	if a.Username == "" {
		return NewValidationError("username", "must not be empty")
	}
	builder := s.client.Account.Create().
		SetID(a.ID).
		SetUsername(a.Username).
		SetPreferences(a.Preferences)
	if !a.CreatedAt.IsZero() {
		builder.SetCreatedAt(a.CreatedAt)
	}
	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("account %s: %w", a.Username, ErrAlreadyExists)
		}
		return fmt.Errorf("create account %s: %w", a.Username, err)
	}
	return nil
}

// UpdatePreferences deep-merges the patch into the stored preferences, so a
// client can update one nested setting without resending the whole document.
func (s *AccountService) UpdatePreferences(ctx context.Context, username string, prefs map[string]any) error {
	row, err := s.client.Account.Query().
		Where(account.Username(username)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("account %s: %w", username, store.ErrNotFound)
		}
		return fmt.Errorf("get account %s: %w", username, err)
	}

	merged := row.Preferences
	if merged == nil {
		merged = make(map[string]interface{})
	}
	if err := mergo.Merge(&merged, map[string]interface{}(prefs), mergo.WithOverride); err != nil {
		return fmt.Errorf("merge preferences for %s: %w", username, err)
	}

	err = s.client.Account.UpdateOneID(row.ID).
		SetPreferences(merged).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update preferences for %s: %w", username, err)
	}
	return nil
}
