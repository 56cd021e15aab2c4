package analyze

// Request is one analysis submission from the browser.
type Request struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// ErrorDetail describes the single error the model reported. Line is nil when the
// model gave no usable line number.
type ErrorDetail struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
	Line   *int   `json:"line"`
}

// Result is the canonical shape returned to the client regardless of what the
// upstream model actually emitted.
type Result struct {
	HasError      bool         `json:"hasError"`
	Error         *ErrorDetail `json:"error"`
	CorrectedCode *string      `json:"correctedCode"`
}
