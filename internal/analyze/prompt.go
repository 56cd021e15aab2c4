package analyze

import "fmt"

// BuildPrompt produces the single deterministic instruction message sent to the
// model. The reply contract mirrors Result exactly; combined with temperature 0
// the same snippet should produce the same analysis.
func BuildPrompt(language, code string) string {
	return fmt.Sprintf(`You are a code analysis assistant. Analyze the following %s code and detect if there is an error.

Respond ONLY with a JSON object in exactly this shape, with no extra text:
{
  "hasError": boolean,
  "error": { "type": string, "reason": string, "line": number or null } or null,
  "correctedCode": string or null
}

Rules:
- If the code has no error: set "hasError" to false, "error" to null and "correctedCode" to null.
- If the code has an error: set "hasError" to true, fill "type" with a short error category, "reason" with a one or two sentence explanation, "line" with the 1-based line number of the error or null if it cannot be pinned to a line, and "correctedCode" with the FULL corrected version of the code.
- Report only the most significant error.

Code:
%s`, language, code)
}
