package usecase

import "context"

// SetRetryFunc はリトライ関数を差し替えます（テスト用に公開）。
func (r *RateResolver) SetRetryFunc(fn func(ctx context.Context, name string, op func() error) error) {
	r.retry = fn
}
