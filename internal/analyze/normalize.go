package analyze

import (
	"encoding/json"

	"codelens/internal/util"
)

// ParseReply turns raw candidate text from the model into a canonical Result.
// The text is only contractually JSON, so it is fence-stripped, parsed strictly,
// and then every field is coerced independently. A *MalformedError carries the
// raw text when parsing fails.
func ParseReply(raw string) (Result, error) {
	txt := util.StripCodeFences(raw)

	var m map[string]any
	if err := json.Unmarshal([]byte(txt), &m); err != nil {
		return Result{}, &MalformedError{Raw: raw}
	}
	return Normalize(m), nil
}

// Normalize coerces an untyped model reply into the strict Result shape. Nothing
// in m is trusted: nested objects may be missing, mistyped, or carry garbage, and
// every field gets an explicit fallback.
func Normalize(m map[string]any) Result {
	if !truthy(m["hasError"]) {
		// Canonical no-error shape. A correctedCode alongside hasError=false is
		// discarded here; see DESIGN.md before changing that.
		return Result{HasError: false, Error: nil, CorrectedCode: nil}
	}

	res := Result{HasError: true}

	if code, ok := m["correctedCode"].(string); ok {
		res.CorrectedCode = &code
	}

	errObj, ok := m["error"].(map[string]any)
	if !ok {
		res.Error = &ErrorDetail{Type: "UnknownError", Reason: "Unknown", Line: nil}
		return res
	}

	detail := &ErrorDetail{Type: "UnknownError", Reason: "Unknown"}
	if t, ok := errObj["type"].(string); ok {
		detail.Type = t
	}
	if r, ok := errObj["reason"].(string); ok {
		detail.Reason = r
	}
	if n, ok := errObj["line"].(float64); ok {
		line := int(n)
		detail.Line = &line
	}
	res.Error = detail
	return res
}

// truthy mirrors JS loose boolean coercion over JSON value kinds: false, 0, "",
// and null are falsy; objects and arrays are truthy even when empty.
func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	case map[string]any, []any:
		return true
	default:
		return false
	}
}
