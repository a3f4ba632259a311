package http

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/MKhiriev/go-transcript-keeper/internal/app"
	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/utils"
)

// maxSignedBodySize caps the body a wallet token may cover.
const maxSignedBodySize = 1 << 20

// walletAuth authenticates a signed write.
//
// The bearer token must be a wallet token whose digest matches the request
// body exactly. On success the signing address is stored in the request
// context under [utils.SenderCtxKey] and the body is restored for the next
// handler. Any failure answers 401 Unauthorized.
func (h *Handler) walletAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Info().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Info().Err(err).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxSignedBodySize))
		if err != nil {
			log.Err(err).Str("func", "*Handler.walletAuth").Msg("failed to read request body")
			utils.WriteError(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		claims, err := utils.ValidateWalletToken(tokenString, body)
		if err != nil {
			log.Info().Err(err).Msg("wallet token rejected")
			utils.WriteError(w, app.MsgInvalidWalletToken, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.SenderCtxKey, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
