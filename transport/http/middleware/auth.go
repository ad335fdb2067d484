package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gomoto/config"
	"gomoto/infras/jwt"
	"gomoto/infras/otel"
	"gomoto/permissions"
	"gomoto/shared"
	"gomoto/shared/cache"
	"gomoto/shared/constant"
	"gomoto/shared/failure"
	"gomoto/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type skipAuthKey struct{}

type Auth interface {
	Auth(next http.Handler) http.Handler
	APIKey(next http.Handler) http.Handler
}

type Role interface {
	RBAC(next http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
	cache      cache.RedisCache
}

func NewAuthRoleMiddleware(
	jwtService jwt.JWT,
	otel otel.Otel,
	permission *permissions.PermissionData,
	cfg *config.Config,
	cache cache.RedisCache,
) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permission,
		cfg:        cfg,
		cache:      cache,
	}
}

func skipped(ctx context.Context) bool {
	skip, _ := ctx.Value(skipAuthKey{}).(bool)

	return skip
}

// routePermission resolves the registered route pattern, so "/v1/bookings/42"
// matches the "/v1/bookings/{id}" entry.
func (m *authRoleImpl) routePermission(request *http.Request) (string, permissions.Permission) {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path, permissions.Permission{}
	}

	path := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
	if m.permission == nil {
		return path, permissions.Permission{}
	}

	return path, m.permission.FindPermissions(path, request.Method)
}

// Auth validates the bearer access token and stores its claims in the request context.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		path, permission := m.routePermission(request)
		if skipped(ctx) || permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		reject := func(err error) {
			scope.TraceError(err)
			response.WithError(writer, err)
		}

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == constant.Empty {
			reject(failure.Unauthorized("missing authorization header"))

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			reject(failure.Unauthorized("invalid authorization header format"))

			return
		}

		claims, err := m.jwtService.ValidateToken(ctx, tokenString, jwt.AccessToken)
		if err != nil {
			reject(failure.Unauthorized(tokenErrorMessage(err)))

			return
		}

		if claims.UserID == constant.Empty || claims.Email == constant.Empty {
			log.Error().Str("token_id", claims.TokenID).Msg("token claims are missing the user")
			reject(failure.Unauthorized("invalid token claims"))

			return
		}

		if m.revoked(ctx, claims.TokenID) {
			reject(failure.Unauthorized("token has been revoked"))

			return
		}

		var expiresAt time.Time
		if claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenExp, expiresAt)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// revoked fails open: a cache outage must not log every user out.
func (m *authRoleImpl) revoked(ctx context.Context, tokenID string) bool {
	if tokenID == constant.Empty {
		return false
	}

	exists, err := m.cache.Exists(ctx, shared.BuildCacheKey(constant.CacheKeyRevokedToken, tokenID))
	if err != nil {
		log.Warn().Err(err).Str("token_id", tokenID).Msg("failed to check token revocation")

		return false
	}

	return exists
}

func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return "token has expired"
	case errors.Is(err, jwt.ErrInvalidToken):
		return "invalid token"
	case errors.Is(err, jwt.ErrInvalidClaim):
		return "invalid token claims"
	default:
		return "token validation failed"
	}
}

// RBAC checks the caller's role against the route entry. It must run after Auth.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		if skipped(ctx) {
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			scope.TraceError(failure.ErrForbidden)
			response.WithError(writer, failure.ErrForbidden)

			return
		}

		_, permission := m.routePermission(request)
		userRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)
		if !m.permission.Skip && !permission.Allows(userRole) {
			scope.SetAttributes(map[string]any{
				"user_role":     userRole,
				"allowed_roles": permission.Permissions,
			})
			scope.TraceError(failure.ErrForbidden)
			response.WithError(writer, failure.ErrForbidden)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// APIKey lets internal callers with the shared key bypass Auth and RBAC.
// Requests without the header continue as regular clients.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		if apiKey == constant.Empty {
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == constant.Empty || apiKey != m.cfg.App.APIKey {
			scope.TraceError(failure.ErrForbidden)
			response.WithError(writer, failure.ErrForbidden)

			return
		}

		ctx = context.WithValue(ctx, skipAuthKey{}, true)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, constant.ContextSystem)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleSuperAdmin)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
