package interfaces

import (
	"context"
	"errors"
	"fmt"

	"construction_estimator/internal/domain/entities"
)

var (
	ErrRemoteNetwork    = errors.New("prediction service unreachable")
	ErrRemoteHTTPStatus = errors.New("prediction service returned error status")
	ErrRemoteParse      = errors.New("prediction service response unparsable")
)

type RemoteErrorKind string

const (
	RemoteErrorNetwork      RemoteErrorKind = "network"
	RemoteErrorHTTPStatus   RemoteErrorKind = "http_status"
	RemoteErrorParseFailure RemoteErrorKind = "parse_failure"
)

// RemoteError is the only error kind an IRemoteEstimator returns.
// StatusCode is set for RemoteErrorHTTPStatus only.
type RemoteError struct {
	Kind       RemoteErrorKind
	StatusCode int
	Err        error
}

func NewRemoteNetworkError(err error) *RemoteError {
	return &RemoteError{Kind: RemoteErrorNetwork, Err: err}
}

func NewRemoteHTTPStatusError(status int) *RemoteError {
	return &RemoteError{Kind: RemoteErrorHTTPStatus, StatusCode: status}
}

func NewRemoteParseError(err error) *RemoteError {
	return &RemoteError{Kind: RemoteErrorParseFailure, Err: err}
}

func (e *RemoteError) Error() string {
	switch e.Kind {
	case RemoteErrorHTTPStatus:
		return fmt.Sprintf("%s: HTTP %d", ErrRemoteHTTPStatus, e.StatusCode)
	case RemoteErrorParseFailure:
		return fmt.Sprintf("%s: %v", ErrRemoteParse, e.Err)
	default:
		return fmt.Sprintf("%s: %v", ErrRemoteNetwork, e.Err)
	}
}

func (e *RemoteError) Unwrap() error { return e.Err }

func (e *RemoteError) Is(target error) bool {
	switch target {
	case ErrRemoteNetwork:
		return e.Kind == RemoteErrorNetwork
	case ErrRemoteHTTPStatus:
		return e.Kind == RemoteErrorHTTPStatus
	case ErrRemoteParse:
		return e.Kind == RemoteErrorParseFailure
	}
	return false
}

// IRemoteEstimator abstracts the external prediction service.
//
// Implementations serialize the request, call the service once per logical
// call (retries, if configured, stay inside the implementation) and normalize
// any known response shape. Every failure is returned as *RemoteError.
type IRemoteEstimator interface {
	Estimate(ctx context.Context, req entities.EstimationRequest) (entities.RemoteEstimate, error)
}
