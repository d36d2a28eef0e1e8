package auth

import (
	"context"
	"errors"
	"patient-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAuthUsecase_Authenticate(t *testing.T) {
	usecase := NewAuthUsecase(map[string]string{"alice": "secret"}, zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name     string
		userID   string
		password string
		wantKind error
	}{
		{name: "Valid credentials", userID: "alice", password: "secret"},
		{name: "Wrong password", userID: "alice", password: "wrong", wantKind: exceptions.ErrInvalidCredential},
		{name: "Empty password", userID: "alice", password: "", wantKind: exceptions.ErrInvalidCredential},
		{name: "Unknown user", userID: "bob", password: "x", wantKind: exceptions.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := usecase.Authenticate(ctx, tt.userID, tt.password)
			if tt.wantKind == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantKind), "expected %v, got %v", tt.wantKind, err)
		})
	}
}

func TestAuthUsecase_EmptyCredentialMap(t *testing.T) {
	usecase := NewAuthUsecase(map[string]string{}, zap.NewNop())

	err := usecase.Authenticate(context.Background(), "alice", "secret")
	assert.True(t, errors.Is(err, exceptions.ErrNotFound))
}
