package cache

import "strings"

// Key は各パラメータから決定的なキャッシュキーを生成します。
//
// 形式: prefix:SYMBOL[:CURRENCY][:PERIOD][:INTERVAL]
// シンボルと通貨は一貫性のために大文字に正規化します。
// currency, period, interval は空文字列の場合は省略されます。
func Key(prefix, symbol, currency, period, interval string) string {
	parts := []string{prefix, strings.ToUpper(symbol)}
	if currency != "" {
		parts = append(parts, strings.ToUpper(currency))
	}
	if period != "" {
		parts = append(parts, period)
	}
	if interval != "" {
		parts = append(parts, interval)
	}
	return strings.Join(parts, ":")
}
