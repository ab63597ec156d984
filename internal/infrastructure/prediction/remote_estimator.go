package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"construction_estimator/internal/config"
	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/usecase/interfaces"

	"github.com/sethvargo/go-retry"
)

const (
	defaultTimeout    = 30 * time.Second
	minimumRetryDelay = time.Millisecond
)

// RemoteEstimator calls the external prediction service over HTTP.
//
// Each attempt is bounded by the configured timeout. Only network failures
// and 502/503/504 are retried, MaxRetries times with a constant delay.
type RemoteEstimator struct {
	endpoint   string
	httpClient *http.Client
	maxRetries uint64
	retryDelay time.Duration
	parser     responseParser
	logger     *slog.Logger
	now        func() time.Time
}

var _ interfaces.IRemoteEstimator = (*RemoteEstimator)(nil)

func NewRemoteEstimator(cfg *config.PredictionConfig, logger *slog.Logger) *RemoteEstimator {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	delay := cfg.RetryDelay
	if delay < minimumRetryDelay {
		delay = minimumRetryDelay
	}
	retries := uint64(0)
	if cfg.MaxRetries > 0 {
		retries = uint64(cfg.MaxRetries)
	}

	return &RemoteEstimator{
		endpoint:   cfg.Endpoint,
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: retries,
		retryDelay: delay,
		parser:     responseParser{modelVersion: cfg.ModelVersion},
		logger:     logger,
		now:        time.Now,
	}
}

func (r *RemoteEstimator) Estimate(ctx context.Context, req entities.EstimationRequest) (entities.RemoteEstimate, error) {
	body, err := json.Marshal(toPredictRequest(req, r.now()))
	if err != nil {
		return entities.RemoteEstimate{}, interfaces.NewRemoteNetworkError(fmt.Errorf("encode request: %w", err))
	}

	var (
		result  entities.RemoteEstimate
		attempt int
	)
	backoff := retry.WithMaxRetries(r.maxRetries, retry.NewConstant(r.retryDelay))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		est, err := r.call(ctx, body)
		if err != nil {
			if isRetryable(err) {
				r.logger.Warn("[prediction][client] attempt failed", "attempt", attempt, "err", err)
				return retry.RetryableError(err)
			}
			return err
		}
		result = est
		return nil
	})
	if err != nil {
		var remoteErr *interfaces.RemoteError
		if errors.As(err, &remoteErr) {
			return entities.RemoteEstimate{}, remoteErr
		}
		// ctx ended while waiting between attempts
		return entities.RemoteEstimate{}, interfaces.NewRemoteNetworkError(err)
	}

	r.logger.Debug("[prediction][client] prediction received", "attempts", attempt, "shape", result.Shape)
	return result, nil
}

func (r *RemoteEstimator) call(ctx context.Context, body []byte) (entities.RemoteEstimate, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return entities.RemoteEstimate{}, interfaces.NewRemoteNetworkError(fmt.Errorf("create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return entities.RemoteEstimate{}, interfaces.NewRemoteNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return entities.RemoteEstimate{}, interfaces.NewRemoteHTTPStatusError(resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.RemoteEstimate{}, interfaces.NewRemoteNetworkError(fmt.Errorf("read response: %w", err))
	}

	est, err := r.parser.parse(data)
	if err != nil {
		return entities.RemoteEstimate{}, interfaces.NewRemoteParseError(err)
	}
	return est, nil
}

func isRetryable(err error) bool {
	var remoteErr *interfaces.RemoteError
	if !errors.As(err, &remoteErr) {
		return false
	}
	switch remoteErr.Kind {
	case interfaces.RemoteErrorNetwork:
		return true
	case interfaces.RemoteErrorHTTPStatus:
		switch remoteErr.StatusCode {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
	}
	return false
}
