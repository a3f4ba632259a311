package adapter

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/utils"
	"github.com/go-resty/resty/v2"
)

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// newRestClient builds the resty client shared by the ledger and gateway
// adapters. When hashKey is set every response must carry a matching
// HashSHA256 header.
func newRestClient(rawURL string, timeout time.Duration, hashKey string, log *logger.Logger) (*utils.HTTPClient, error) {
	baseURL, err := normalizeBaseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, timeout)

	if hashKey != "" {
		hasher := utils.NewHasher(hashKey)
		client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			digest := resp.Header().Get(utils.HashHeader)
			if digest == "" || !hasher.Verify(resp.Body(), digest) {
				log.Warn().
					Str("func", "adapter.integrityCheck").
					Str("url", resp.Request.URL).
					Msg("response hash mismatch")
				return ErrIntegrityCheckFailed
			}
			return nil
		})
	}

	return client, nil
}
