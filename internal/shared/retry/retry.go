// Package retry provides a bounded exponential-backoff retry combinator for
// unreliable external calls.
package retry

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// maxAttempts は初回実行を含む試行回数の上限です。
	maxAttempts = 5
	// initialInterval は初回リトライまでの待機時間です。
	initialInterval = 1 * time.Second
	// maxInterval はリトライ間隔の上限です。
	maxInterval = 30 * time.Second
	// multiplier はリトライごとの待機時間の増加係数です。
	multiplier = 2.0
)

// Do はopを成功するまで実行します。失敗時は指数バックオフ
// （1s, 2s, 4s, ... 上限30s）で待機し、最大5回試行します。
// 試行回数を使い切った場合は最後のエラーを返します。
// contextのキャンセルは待機を打ち切り、ctx.Err()を返します。
func Do(ctx context.Context, name string, op func() error) error {
	return doWithBackOff(ctx, name, op, newPolicy(ctx))
}

// Permanent はerrをリトライ対象外としてマークします。Doはこのエラーを
// 受け取ると残り試行を打ち切り、元のerrをそのまま返します。
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// newPolicy は既定のバックオフポリシーを構築します。
func newPolicy(ctx context.Context) backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = initialInterval
	bo.MaxInterval = maxInterval
	bo.Multiplier = multiplier
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0 // 回数で制限するため経過時間では打ち切らない

	return backoff.WithContext(backoff.WithMaxRetries(bo, maxAttempts-1), ctx)
}

// doWithBackOff はポリシーを注入可能な実装本体です（テスト用に分離）。
func doWithBackOff(_ context.Context, name string, op func() error, policy backoff.BackOff) error {
	return backoff.RetryNotify(op, policy, func(err error, wait time.Duration) {
		slog.Warn("operation failed, retrying", "operation", name, "wait", wait, "error", err)
	})
}
