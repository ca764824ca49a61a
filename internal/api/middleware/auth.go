package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/auth"
)

const (
	msgMissingToken = "требуется аутентификация"
	msgInvalidToken = "некорректный или просроченный токен"
)

type userCtxKey struct{}

// TokenParser интерфейс проверки токенов
type TokenParser interface {
	ParseToken(tokenString string) (*auth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth middleware аутентификации по Bearer токену
type Auth struct {
	parser TokenParser
	logger Logger
}

// NewAuth создает middleware аутентификации
func NewAuth(parser TokenParser, logger Logger) *Auth {
	return &Auth{parser: parser, logger: logger}
}

// Require пропускает только запросы с валидным токеном
// Claims кладутся в контекст запроса
func (a *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := a.parse(r)
		if !ok {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), claims)))
	})
}

// Optional кладет claims в контекст, если токен есть и валиден,
// но пропускает запрос в любом случае
func (a *Auth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := a.parse(r); ok {
			r = r.WithContext(withUser(r.Context(), claims))
		}

		next.ServeHTTP(w, r)
	})
}

func (a *Auth) parse(r *http.Request) (*auth.Claims, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, false
	}

	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		a.logger.Warn("auth: malformed Authorization header on %s %s", r.Method, r.URL.Path)
		return nil, false
	}

	claims, err := a.parser.ParseToken(tokenString)
	if err != nil {
		a.logger.Warn("auth: invalid token on %s %s: %v", r.Method, r.URL.Path, err)
		return nil, false
	}

	return claims, true
}

func withUser(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, userCtxKey{}, claims)
}

// CurrentUser извлекает claims аутентифицированного пользователя из контекста
func CurrentUser(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(userCtxKey{}).(*auth.Claims)
	return claims, ok
}

// IsAdmin проверяет, что в контексте администратор
func IsAdmin(ctx context.Context) bool {
	claims, ok := CurrentUser(ctx)
	return ok && claims.Role == "ADMIN"
}
