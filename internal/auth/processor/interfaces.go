package processor

import (
	"context"

	"redditleads/internal/store"

	"github.com/google/uuid"
)

// AccountStore defines the database operations required by AuthProcessor
type AccountStore interface {
	GetAccountByID(ctx context.Context, accountID uuid.UUID) (store.Account, error)
}
