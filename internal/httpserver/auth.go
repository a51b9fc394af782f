// internal/httpserver/auth.go
//
// Bearer-token guard for the word-list upload.
// Responsibilities:
//   - Issue HS256 tokens (SignToken) for operators; the CLI "token" command wraps it.
//   - requireAuth: reject requests without a valid token carrying a subject.
//   - POST /wordlist: replace the active word list with the uploaded body.
//
// Notes:
//   - With no JWT secret configured the upload route is disabled outright.
//   - The body is plain text, one word per line; words of every length are kept
//     and the solver picks the ones matching each request.

package httpserver

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wrdlstab/internal/puzzle"
	"github.com/robalobadob/wrdlstab/internal/words"
)

const maxUploadBytes = 8 << 20

// ctxSubjectKey is the context key type for the token subject.
type ctxSubjectKey struct{}

// SignToken creates an HS256 JWT for subject that expires after ttl.
func SignToken(secret, subject string, ttl time.Duration) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, fmt.Errorf("sign token: empty secret")
	}
	now := time.Now()
	exp := now.Add(ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString([]byte(secret))
	return ss, exp, err
}

// requireAuth enforces a valid bearer token and stores its subject in the request context.
func (s *Server) requireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s.opts.JWTSecret == "" {
				http.Error(w, `{"error":"upload_disabled"}`, http.StatusForbidden)
				return
			}
			tokenStr := bearer(r)
			if tokenStr == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			claims := &jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(s.opts.JWTSecret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid || claims.Subject == "" {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), ctxSubjectKey{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearer extracts the token from an "Authorization: Bearer <token>" header.
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// handleWordList swaps the active word list for the uploaded one.
func (s *Server) handleWordList(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	var list words.List
	seen := make(map[string]bool)
	sc := bufio.NewScanner(r.Body)
	for sc.Scan() {
		word := strings.ToLower(strings.TrimSpace(sc.Text()))
		if word == "" || strings.HasPrefix(word, "#") || seen[word] {
			continue
		}
		if puzzle.Clean(word) != word {
			continue
		}
		seen[word] = true
		list = append(list, word)
	}
	if err := sc.Err(); err != nil {
		http.Error(w, `{"error":"bad_body"}`, http.StatusBadRequest)
		return
	}
	if len(list) == 0 {
		writeError(w, r, fmt.Errorf("%w: uploaded list has no words", puzzle.ErrInvalidRow))
		return
	}

	s.words.Replace(list)
	sub, _ := r.Context().Value(ctxSubjectKey{}).(string)
	log.Info().Str("sub", sub).Int("words", len(list)).Uint64("version", s.words.Version()).Msg("word list replaced")
	writeJSON(w, http.StatusOK, map[string]any{"words": len(list), "version": s.words.Version()})
}
