// Package fallback decorates a remote store with a local one. Each call tries
// the remote backend first and repeats the same call locally when it fails.
// The two backends are never reconciled: records written locally during an
// outage stay local.
package fallback

import (
	"context"
	"time"

	"makemodelyear/pkg/logger"
)

const DefaultRemoteTimeout = 10 * time.Second

type call[T any] func(ctx context.Context) (T, error)

type orchestrator struct {
	timeout time.Duration
	log     *logger.Logger
}

func newOrchestrator(timeout time.Duration, log *logger.Logger) orchestrator {
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	if log == nil {
		log = logger.NewNop()
	}
	return orchestrator{timeout: timeout, log: log}
}

// attempt runs remote (when present) under the per-call timeout, then local.
// keys are logged with either failure.
func attempt[T any](ctx context.Context, o orchestrator, op string, keys []interface{}, remote, local call[T]) (T, error) {
	log := o.log.With(keys...)

	if remote != nil {
		remoteCtx, cancel := context.WithTimeout(ctx, o.timeout)
		result, err := remote(remoteCtx)
		cancel()
		if err == nil {
			return result, nil
		}
		log.Warn("[FALLBACK] remote %s failed, falling back to local store: %v", op, err)
	}

	result, err := local(ctx)
	if err != nil {
		log.Error("[FALLBACK] local fallback %s failed: %v", op, err)
		return result, err
	}
	return result, nil
}

// read degrades to empty when both backends fail.
func read[T any](ctx context.Context, o orchestrator, op string, keys []interface{}, empty T, remote, local call[T]) (T, error) {
	result, err := attempt(ctx, o, op, keys, remote, local)
	if err != nil {
		return empty, nil
	}
	return result, nil
}

// write propagates the local failure; a lost write must surface.
func write[T any](ctx context.Context, o orchestrator, op string, keys []interface{}, remote, local call[T]) (T, error) {
	return attempt(ctx, o, op, keys, remote, local)
}

// remoteOnly never repeats a failed remote call locally. Post IDs are not
// shared between the backends, so a local retry would touch a different
// record. Without a remote the local store is the only backend.
func remoteOnly[T any](ctx context.Context, o orchestrator, op string, keys []interface{}, remote, local call[T]) (T, error) {
	if remote == nil {
		return attempt(ctx, o, op, keys, nil, local)
	}

	remoteCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	result, err := remote(remoteCtx)
	if err != nil {
		o.log.With(keys...).Warn("[FALLBACK] remote %s failed, not retrying locally: %v", op, err)
	}
	return result, err
}

// viaRemote drops fn when there is no remote backend.
func viaRemote[T any](enabled bool, fn call[T]) call[T] {
	if !enabled {
		return nil
	}
	return fn
}

func kv(pairs ...interface{}) []interface{} {
	return pairs
}
