package auth

import (
	"context"

	"github.com/Prathapkumar-67/aptitude-website/internal/apperror"
	"github.com/google/uuid"
)

const (
	RoleBoss    = "boss"
	RoleStudent = "student"
)

// RequireBoss gates curator operations. Every mutating hierarchy or question
// service calls this first and performs no writes when it fails.
func RequireBoss(ctx context.Context) error {
	claims, err := GetUserClaimsFromContext(ctx)
	if err != nil {
		return apperror.Permission("authentication required")
	}
	if claims.Role != RoleBoss {
		return apperror.Permission("boss role required")
	}
	return nil
}

// CurrentUserID resolves the authenticated principal. Student operations need
// only this; the role is not checked.
func CurrentUserID(ctx context.Context) (uuid.UUID, error) {
	claims, err := GetUserClaimsFromContext(ctx)
	if err != nil {
		return uuid.Nil, apperror.Permission("authentication required")
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, apperror.Permission("invalid user id in token")
	}
	return id, nil
}
