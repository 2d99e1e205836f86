package subscriptions

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=subscriptions

import (
	"redditleads/internal/observability"
)

type SubscriptionService struct {
	logger *observability.Logger
	store  AccountStore
}

func New(logger *observability.Logger, store AccountStore) SubscriptionService {
	return SubscriptionService{
		logger: logger,
		store:  store,
	}
}
