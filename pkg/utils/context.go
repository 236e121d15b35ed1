package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	OperatorIDKey contextKey = "operator_id"
	TokenKey      contextKey = "token"
)

// GetOperatorIDFromContext returns the operator id set by the session
// middleware. Absence means the request is not operator-authenticated.
func GetOperatorIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	val := ctx.Value(OperatorIDKey)
	if val == nil {
		return uuid.Nil, false
	}

	idStr, ok := val.(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func SetOperatorContext(ctx context.Context, operatorID uuid.UUID) context.Context {
	return context.WithValue(ctx, OperatorIDKey, operatorID.String())
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(TokenKey)
	if val == nil {
		return "", false
	}

	token, ok := val.(string)
	return token, ok
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}
