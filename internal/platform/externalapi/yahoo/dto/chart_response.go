package dto

// ChartResponse represents the JSON response from the v8 chart endpoint.
type ChartResponse struct {
	Chart struct {
		Result []ChartResult `json:"result"`
		Error  *APIError     `json:"error"`
	} `json:"chart"`
}

// ChartResult holds one symbol's time series. Close values are pointers
// because the provider emits null for gaps (halts, thin sessions).
type ChartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []*float64 `json:"open"`
			High   []*float64 `json:"high"`
			Low    []*float64 `json:"low"`
			Close  []*float64 `json:"close"`
			Volume []*int64   `json:"volume"`
		} `json:"quote"`
	} `json:"indicators"`
}
