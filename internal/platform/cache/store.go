// Package cache provides a TTL-keyed JSON value store backed by Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store はTTL付きのJSON値をRedisに保持するキーバリューストアです。
//
// すべての操作は自身のI/O失敗を処理します。接続障害は常にミス／no-opに
// 縮退し、呼び出し側にエラーを返しません。キャッシュの成否に依存する
// 呼び出し側コードを書いてはいけません。
type Store struct {
	rdb *redis.Client
}

// NewStore はStoreの新しいインスタンスを生成します。
// rdbがnilの場合、すべてのGetはミス、すべてのSetはno-opになります。
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Get はキーに対応する値を取得してdestにデコードします。
// ヒットした場合はtrueを返します。未登録・期限切れ・接続障害はミスです。
// 格納値が壊れていた場合はエントリを削除してミス扱いにします（自己修復）。
func (s *Store) Get(ctx context.Context, key string, dest any) bool {
	if s.rdb == nil {
		return false
	}

	b, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Error("cache get failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(b, dest); err != nil {
		// 壊れたエントリを削除してミス扱い
		slog.Warn("invalid JSON in cache, deleting entry", "key", key, "error", err)
		_ = s.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// Set は値をJSONにエンコードしてTTL付きで格納します。
// nilや直列化できない値は警告を出して無視します。格納失敗は致命的では
// ありません（次回のGetがミスするだけ）。
func (s *Store) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if s.rdb == nil {
		return
	}
	if value == nil {
		slog.Warn("attempted to cache nil value", "key", key)
		return
	}

	b, err := json.Marshal(value)
	if err != nil {
		slog.Error("value is not JSON serializable", "key", key, "error", err)
		return
	}
	if err := s.rdb.Set(ctx, key, b, ttl).Err(); err != nil {
		slog.Error("cache set failed", "key", key, "error", err)
	}
}
