package auth

import (
	"net/http"
	"strings"
)

// ExtractAccessToken pulls the session token from the request, cookie
// first, Authorization header as fallback.
func ExtractAccessToken(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil {
		if cookie.Value != "" {
			return cookie.Value
		}
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}
