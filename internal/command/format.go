package command

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnsupportedReply answers any command name the registry does not know.
const UnsupportedReply = "not implemented :("

// FormatJSON pretty-prints a node result as a fenced JSON block.
func FormatJSON(result json.RawMessage) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, result, "", "  "); err != nil {
		return "", fmt.Errorf("indent result: %w", err)
	}
	return "```json\n" + buf.String() + "\n```", nil
}

// FormatError renders a failure as reply text.
func FormatError(err error) string {
	return "Error: " + err.Error()
}
