package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"redditleads/internal/observability"
	"redditleads/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "redditleads"

type AuthProcessor struct {
	store     AccountStore
	jwtSecret string
	logger    *observability.Logger
	now       func() time.Time
}

func New(store AccountStore, jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:     store,
		logger:    logger,
		jwtSecret: jwtSecret,
		now:       time.Now,
	}
}

var (
	ErrInvalidJWTToken  = errors.New("invalid jwt token")
	ErrParseJWTToken    = errors.New("failed to parse jwt token")
	ErrExpiredToken     = errors.New("token expired")
	ErrInvalidAccountID = errors.New("token subject is not a valid account id")
	ErrAccountNotFound  = errors.New("account not found")
)

type BaseClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud"`
}

// AccountID returns the account the token was issued for
func (b BaseClaims) AccountID() (uuid.UUID, error) {
	accountID, err := uuid.Parse(b.Subject)
	if err != nil {
		return uuid.UUID{}, ErrInvalidAccountID
	}
	return accountID, nil
}

// GetAccount returns the account with its subscription state
func (p *AuthProcessor) GetAccount(ctx context.Context, accountID uuid.UUID) (store.Account, error) {
	account, err := p.store.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Account{}, ErrAccountNotFound
		}
		p.logger.Error(ctx, "failed to get account", err)
		return store.Account{}, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}
