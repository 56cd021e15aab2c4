package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptEmbedsLanguageAndCode(t *testing.T) {
	p := BuildPrompt("python", "print('hi'")

	assert.Contains(t, p, "python code")
	assert.Contains(t, p, "print('hi'")
	assert.Contains(t, p, `"hasError"`)
	assert.Contains(t, p, `"correctedCode"`)
	assert.Contains(t, p, "ONLY with a JSON object")
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	assert.Equal(t, BuildPrompt("go", "x := 1"), BuildPrompt("go", "x := 1"))
}
