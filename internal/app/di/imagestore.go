// Package di provides dependency injection factories for creating application components.
package di

import (
	"walloffame_backend/internal/platform/externalapi/imgbb"
	infrahttp "walloffame_backend/internal/platform/http"
)

// NewImageStore creates a fully configured imgbb client with HTTP client.
func NewImageStore() *imgbb.Client {
	cfg := imgbb.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return imgbb.NewClient(cfg, httpClient)
}
