package mocks

import (
	"context"
	"net/http"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/auth"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/constants"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/models"
)

func NewMockedAuthService(user models.User) auth.Service {
	return &MockedAuthService{
		user: user,
	}
}

type MockedAuthService struct {
	user models.User
}

func (m *MockedAuthService) Access(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Inject a mock user into the context
		ctx := context.WithValue(r.Context(), constants.UserContextKey, m.user)
		r = r.WithContext(ctx)

		next(w, r)
	}
}
