package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/terraform-plugin-log/tflog"
)

const (
	// StatusAbsent is synthesized when a resource can no longer be read.
	// It counts as stable when waiting for a deletion to finish.
	StatusAbsent = "absent"
	// StatusError is the terminal failure status reported by the API.
	StatusError = "error"

	// DefaultWaitTimeout bounds a single wait for stability.
	DefaultWaitTimeout = 5 * time.Minute
	// DefaultPollInterval is the delay between two status reads.
	DefaultPollInterval = 3 * time.Second
)

// StateReader reads the current provider-reported status of one resource.
type StateReader interface {
	ReadState(ctx context.Context) (string, error)
}

// StateReaderFunc adapts a plain function to the StateReader interface.
type StateReaderFunc func(ctx context.Context) (string, error)

// ReadState implements StateReader.
func (f StateReaderFunc) ReadState(ctx context.Context) (string, error) {
	return f(ctx)
}

// WaitForState polls a resource until its status is one of stableStates,
// re-reading it every pollInterval. A resource observed in StatusError
// fails immediately; a read answered with not found maps to StatusAbsent.
// The last observed status is returned alongside any error.
func WaitForState(ctx context.Context, reader StateReader, stableStates []string, timeout, pollInterval time.Duration) (string, error) {
	var last string
	err := Retry(ctx, timeout, pollInterval, func() *RetryError {
		status, err := reader.ReadState(ctx)
		if err != nil {
			if !IsNotFound(err) {
				return NonRetryableError(err)
			}
			status = StatusAbsent
		}
		last = status

		if status == StatusError {
			return NonRetryableError(fmt.Errorf("resource reached status %q", status))
		}
		for _, stable := range stableStates {
			if status == stable {
				tflog.Debug(ctx, "resource reached a stable status", map[string]any{
					"status": status,
				})
				return nil
			}
		}
		return RetryableError(fmt.Errorf("resource status is %q, waiting for one of %v", status, stableStates))
	})
	return last, err
}
