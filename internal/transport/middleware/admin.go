package middleware

import (
	"context"

	"github.com/powerline/gridstock/internal/domain"
	"github.com/powerline/gridstock/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden if the context user is not an
// admin. Call it inside handlers that guard admin-only writes; it is not
// an HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
