package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/muhammadheryan/kidswear/cmd/config"
	"github.com/muhammadheryan/kidswear/constant"
	"github.com/muhammadheryan/kidswear/utils/errors"
	"github.com/muhammadheryan/kidswear/utils/logger"
	"go.uber.org/zap"
)

const WebhookSecretHeader = "X-Webhook-Secret"

// WebhookMiddleware admits a gateway callback when it carries the shared
// secret, when mock webhooks are explicitly allowed, or outside production.
// Everything else is rejected before the handler runs.
func WebhookMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !webhookAllowed(cfg, r.Header.Get(WebhookSecretHeader)) {
				logger.Warn("[WebhookMiddleware] rejected webhook", zap.String("path", r.URL.Path))
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func webhookAllowed(cfg *config.Config, secret string) bool {
	expected := cfg.Payment.WebhookSecret
	if expected != "" && subtle.ConstantTimeCompare([]byte(secret), []byte(expected)) == 1 {
		return true
	}
	if cfg.Payment.AllowMockWebhooks {
		return true
	}
	return !cfg.IsProduction()
}
