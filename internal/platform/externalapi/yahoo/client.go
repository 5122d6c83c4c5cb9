package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stockevent_backend/internal/platform/externalapi/yahoo/dto"
	"stockevent_backend/internal/shared/retry"
)

// Quote は1銘柄分の現在値情報です。フィールドはプロバイダが省略し得るため
// ポインタで保持します（欠損とゼロを区別するため）。
type Quote struct {
	Symbol        string
	Price         *float64
	PreviousClose *float64
	ChangePercent *float64
	MarketCap     *float64
}

// Bar は時系列の1点です。
type Bar struct {
	Time  time.Time
	Close float64
}

// Client はYahoo Finance外部APIから相場データを取得します。
// 各メソッドは指数バックオフ付きリトライでラップされており、リトライを
// 使い切った場合のみエラーを返します。
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// FetchQuotes は複数銘柄の現在値を1回のAPI呼び出しでまとめて取得します。
// 戻り値のマップは大文字化したシンボルをキーとし、レスポンスに含まれなかった
// 銘柄のエントリは存在しません。空のシンボルリストはネットワーク呼び出しなしで
// 空マップを返します。
func (c *Client) FetchQuotes(ctx context.Context, symbols []string) (map[string]Quote, error) {
	if len(symbols) == 0 {
		return map[string]Quote{}, nil
	}

	var out map[string]Quote
	err := retry.Do(ctx, "yahoo quote batch", func() error {
		m, err := c.fetchQuotesOnce(ctx, symbols)
		if err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) fetchQuotesOnce(ctx context.Context, symbols []string) (map[string]Quote, error) {
	q := url.Values{}
	q.Set("symbols", strings.Join(symbols, ","))

	u := fmt.Sprintf("%s/quote?%s", c.cfg.QuoteBaseURL, q.Encode())

	var body dto.QuoteResponse
	if err := c.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	if body.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("yahoo quote: %s", body.QuoteResponse.Error.Description)
	}

	quotes := make(map[string]Quote, len(body.QuoteResponse.Result))
	for _, r := range body.QuoteResponse.Result {
		quotes[strings.ToUpper(r.Symbol)] = Quote{
			Symbol:        strings.ToUpper(r.Symbol),
			Price:         r.RegularMarketPrice,
			PreviousClose: r.RegularMarketPreviousClose,
			ChangePercent: r.RegularMarketChangePercent,
			MarketCap:     r.MarketCap,
		}
	}
	return quotes, nil
}

// FetchHistory は1銘柄の時系列データを取得します。periodとintervalは
// プロバイダの表記をそのまま使用します（例: "1mo", "1d"）。
// データが存在しない場合は空スライスを返します（エラーではありません）。
func (c *Client) FetchHistory(ctx context.Context, symbol, period, interval string) ([]Bar, error) {
	var out []Bar
	err := retry.Do(ctx, "yahoo history", func() error {
		bars, err := c.fetchHistoryOnce(ctx, symbol, period, interval)
		if err != nil {
			return err
		}
		out = bars
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) fetchHistoryOnce(ctx context.Context, symbol, period, interval string) ([]Bar, error) {
	q := url.Values{}
	q.Set("range", period)
	q.Set("interval", interval)

	u := fmt.Sprintf("%s/chart/%s?%s", c.cfg.ChartBaseURL, url.PathEscape(symbol), q.Encode())

	var body dto.ChartResponse
	if err := c.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	if body.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo chart: %s", body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 {
		return []Bar{}, nil
	}

	result := body.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return []Bar{}, nil
	}
	closes := result.Indicators.Quote[0].Close

	bars := make([]Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		// 欠損バー（休場・薄商い）はスキップ
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		bars = append(bars, Bar{
			Time:  time.Unix(ts, 0).UTC(),
			Close: *closes[i],
		})
	}
	return bars, nil
}

// getJSON はGETリクエストを実行してJSONレスポンスをデコードします。
func (c *Client) getJSON(ctx context.Context, u string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	// Yahooはデフォルトのgo-http-client UAを拒否する
	req.Header.Set("User-Agent", "Mozilla/5.0")

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("yahoo http %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(dest)
}
