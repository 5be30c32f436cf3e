package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/errortools"
	"github.com/getsentry/sentry-go"
	"github.com/xhit/go-str2duration/v2"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/cmd/dashboard/internal/dtos"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/constants"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/models"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

// AuthService bridges dashboard session cookies and the backend's
// bearer tokens. The backend owns credentials; this service only
// stores tokens in httponly cookies and resolves them to users.
type AuthService struct {
	client           tava.Client
	useSecureCookies bool
	accessExpiry     string
	refreshExpiry    string
}

func (service *AuthService) SignInWithEmail(
	ctx context.Context,
	signInDto *dtos.SignInDto,
) (*string, *string, error) {
	//nolint:exhaustruct //don't need other fields
	response, err := service.client.Token(ctx, tava.TokenRequest{
		GrantType: "password",
		Email:     signInDto.Email,
		Password:  signInDto.Password,
	})
	if err != nil {
		return nil, nil, errortools.NewUnauthorizedError(
			errors.New("invalid credentials"),
		)
	}

	return &response.AccessToken, &response.RefreshToken, nil
}

func (service *AuthService) SignInWithRefreshToken(
	ctx context.Context,
	refreshToken string,
) (*string, *string, error) {
	//nolint:exhaustruct //don't need other fields
	response, err := service.client.Token(ctx, tava.TokenRequest{
		GrantType:    "refresh_token",
		RefreshToken: refreshToken,
	})
	if err != nil {
		return nil, nil, err
	}

	return &response.AccessToken, &response.RefreshToken, nil
}

func (service *AuthService) GetUser(
	ctx context.Context,
	accessToken string,
) (*models.User, error) {
	account, err := service.client.WithToken(accessToken).Me(ctx)
	if err != nil {
		return nil, err
	}

	user := models.UserFromAccount(*account)

	return &user, nil
}

func (service *AuthService) SignOut(
	ctx context.Context,
	accessToken string,
) (*http.Cookie, *http.Cookie, error) {
	err := service.client.WithToken(accessToken).SignOut(ctx)
	if err != nil {
		return nil, nil, err
	}

	deleteAccessTokenCookie := &http.Cookie{
		Name:     service.GetCookieName(models.AccessScope),
		Value:    "",
		MaxAge:   -1,
		SameSite: http.SameSiteStrictMode,
		HttpOnly: true,
		Path:     "/",
	}

	deleteRefreshTokenCookie := &http.Cookie{
		Name:     service.GetCookieName(models.RefreshScope),
		Value:    "",
		MaxAge:   -1,
		SameSite: http.SameSiteStrictMode,
		HttpOnly: true,
		Path:     "/",
	}

	return deleteAccessTokenCookie, deleteRefreshTokenCookie, nil
}

func (service *AuthService) GetCookieName(scope models.Scope) string {
	switch scope {
	case models.AccessScope:
		return "accessToken"
	case models.RefreshScope:
		return "refreshToken"
	default:
		panic("invalid scope")
	}
}

func (service *AuthService) CreateCookie(
	scope models.Scope,
	token string,
	expiry string,
) (*http.Cookie, error) {
	ttl, err := str2duration.ParseDuration(expiry)
	if err != nil {
		return nil, err
	}

	name := service.GetCookieName(scope)

	cookie := http.Cookie{
		Name:     name,
		Value:    token,
		Expires:  time.Now().Add(ttl),
		SameSite: http.SameSiteStrictMode,
		HttpOnly: true,
		Secure:   service.useSecureCookies,
		Path:     "/",
	}

	return &cookie, nil
}

func (service *AuthService) Access(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var accessToken string

		tokenCookie, err := r.Cookie(service.GetCookieName(models.AccessScope))
		if err == nil {
			accessToken = tokenCookie.Value
		} else {
			refreshCookie, refreshErr := r.Cookie(
				service.GetCookieName(models.RefreshScope),
			)
			if refreshErr != nil {
				httptools.UnauthorizedResponse(w, r,
					errortools.NewUnauthorizedError(errors.New("no token in cookies")))
				return
			}

			accessToken, err = service.refreshSession(r.Context(), w, refreshCookie.Value)
			if err != nil {
				httptools.UnauthorizedResponse(w, r,
					errortools.NewUnauthorizedError(err))
				return
			}
		}

		user, err := service.GetUser(r.Context(), accessToken)
		if err != nil {
			httptools.HandleError(w, r, err)
			return
		}

		r = r.WithContext(
			service.contextSetUser(r.Context(), *user, accessToken),
		)
		next.ServeHTTP(w, r)
	})
}

// refreshSession trades the refresh token for a new token pair and
// replaces both session cookies.
func (service *AuthService) refreshSession(
	ctx context.Context,
	w http.ResponseWriter,
	refreshToken string,
) (string, error) {
	newAccessToken, newRefreshToken, err := service.SignInWithRefreshToken(
		ctx,
		refreshToken,
	)
	if err != nil {
		return "", err
	}

	accessTokenCookie, err := service.CreateCookie(
		models.AccessScope,
		*newAccessToken,
		service.accessExpiry,
	)
	if err != nil {
		return "", err
	}

	refreshTokenCookie, err := service.CreateCookie(
		models.RefreshScope,
		*newRefreshToken,
		service.refreshExpiry,
	)
	if err != nil {
		return "", err
	}

	http.SetCookie(w, accessTokenCookie)
	http.SetCookie(w, refreshTokenCookie)

	return *newAccessToken, nil
}

func (service *AuthService) contextSetUser(
	ctx context.Context,
	user models.User,
	accessToken string,
) context.Context {
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		//nolint:exhaustruct //other fields are optional
		hub.Scope().SetUser(sentry.User{
			ID:    user.ID,
			Email: user.Email,
		})
	}

	ctx = context.WithValue(ctx, constants.UserContextKey, user)
	return context.WithValue(ctx, constants.AccessTokenContextKey, accessToken)
}
