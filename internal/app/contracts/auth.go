package contracts

import "context"

type AuthUsecase interface {
	Authenticate(ctx context.Context, userID, password string) error
}
