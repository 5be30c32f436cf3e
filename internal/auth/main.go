package auth

import (
	"net/http"
)

// Service guards routes behind the dashboard session. Access resolves
// the session cookie to a user through the backend and stores it on
// the request context.
type Service interface {
	Access(next http.HandlerFunc) http.HandlerFunc
}
