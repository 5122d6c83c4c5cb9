package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestRateLimiter_UnderLimit は上限以下の呼び出しで待機しないことを検証します。
func TestRateLimiter_UnderLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(10, time.Minute)

	start := time.Now()
	for i := 0; i < 10; i++ {
		rl.WaitIfNeeded()
	}

	assert.Less(t, time.Since(start), 100*time.Millisecond, "should not sleep under the limit")
	assert.Equal(t, 10, rl.count)
}

// TestRateLimiter_OverLimit は上限超過時に待機してカウントをリセットすることを検証します。
func TestRateLimiter_OverLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(2, 50*time.Millisecond)

	rl.WaitIfNeeded()
	rl.WaitIfNeeded()

	start := time.Now()
	rl.WaitIfNeeded() // 3回目: ウィンドウの残り時間を待つ
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 10*time.Millisecond, "third call should wait for the window")
	assert.Equal(t, 1, rl.count, "count should reset after the wait")
}

// TestRateLimiter_WindowReset はウィンドウ経過後にカウントがリセットされることを検証します。
func TestRateLimiter_WindowReset(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(2, 20*time.Millisecond)

	rl.WaitIfNeeded()
	rl.WaitIfNeeded()

	time.Sleep(25 * time.Millisecond)

	start := time.Now()
	rl.WaitIfNeeded()

	assert.Less(t, time.Since(start), 10*time.Millisecond, "new window should not block")
	assert.Equal(t, 1, rl.count)
}
