// Package middlewarectx содержит HTTP middleware API: проверку JWT, ограничение
// частоты запросов и сбор метрик.
//
// JWTMiddleware проверяет наличие и валидность JWT токена в заголовке Authorization
// и в случае успеха кладёт в контекст access.Actor для дальнейшего использования в обработчиках.
// В случае ошибки проверки возвращает HTTP 401 Unauthorized с сообщением об ошибке.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/finher/internal/http/response"
	"github.com/magabrotheeeer/finher/internal/lib/access"
	"github.com/magabrotheeeer/finher/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// ActorKey ключ для access.Actor в контексте.
const ActorKey Key = "actor"

// TokenVerifier описывает сервис, который проверяет JWT и возвращает пользователя.
type TokenVerifier interface {
	VerifyToken(token string) (access.Actor, error)
}

// WithActor возвращает контекст с сохранённым пользователем.
func WithActor(ctx context.Context, actor access.Actor) context.Context {
	return context.WithValue(ctx, ActorKey, actor)
}

// ActorFromContext достаёт пользователя, положенного JWTMiddleware.
func ActorFromContext(ctx context.Context) (access.Actor, bool) {
	actor, ok := ctx.Value(ActorKey).(access.Actor)
	if !ok || actor.UserID == "" {
		return access.Actor{}, false
	}
	return actor, true
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
func JWTMiddleware(verifier TokenVerifier, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"
			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Info("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

			actor, err := verifier.VerifyToken(tokenStr)
			if err != nil {
				log.Info("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}
