package auth

import (
	"context"
	"crypto/subtle"
	"patient-service/internal/app/contracts"
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/exceptions"
	"patient-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	Users map[string]string
	Log   *zap.Logger
}

// NewAuthUsecase checks credentials against users, a user ID to password
// map that must not be modified afterwards.
func NewAuthUsecase(users map[string]string, logger *zap.Logger) contracts.AuthUsecase {
	return &authUsecase{
		Users: users,
		Log:   logger,
	}
}

func (uc *authUsecase) Authenticate(ctx context.Context, userID, password string) error {
	requestID := utils.GetRequestID(ctx)

	expected, ok := uc.Users[userID]
	if !ok {
		utils.LogSecurityEvent(uc.Log, "login_unknown_user", requestID,
			zap.String(constvars.LoggingUserIDKey, userID),
		)
		return exceptions.ErrUserNotExist(nil, userID)
	}

	if subtle.ConstantTimeCompare([]byte(expected), []byte(password)) != 1 {
		utils.LogSecurityEvent(uc.Log, "login_incorrect_password", requestID,
			zap.String(constvars.LoggingUserIDKey, userID),
		)
		return exceptions.ErrIncorrectPassword(nil)
	}

	uc.Log.Info("authUsecase.Authenticate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return nil
}
