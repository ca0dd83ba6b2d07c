package control

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Message represents a control protocol message.
type Message struct {
	Command  string          `json:"command,omitempty"`
	Args     []string        `json:"args,omitempty"`
	Options  map[string]any  `json:"options,omitempty"`
	Response string          `json:"response,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// WireFormat handles message serialization for the control protocol.
type WireFormat interface {
	// Encode writes a message to the writer.
	Encode(w io.Writer, msg *Message) error
	// Decode reads a message from the reader.
	Decode(r io.Reader) (*Message, error)
}

// LineFormat implements a newline-delimited text protocol for use with
// tools like socat or nc.
// Commands: "ping\n", "status\n", "cln_pay bolt11=lnbc...\n"
// Responses: "pong\n", "running\n", "error: message\n"
// Multi-line replies cannot be represented; newlines are escaped as "\n".
// Fields are split on whitespace with no quoting, so an option value cannot
// contain spaces: JSON text such as route=[{"id": ...}] must be written
// compact or sent with JSONFormat.
type LineFormat struct{}

// Encode writes a message as a newline-terminated string.
func (LineFormat) Encode(w io.Writer, msg *Message) error {
	var line string
	switch {
	case msg.Error != "":
		line = fmt.Sprintf("error: %s", msg.Error)
	case msg.Response != "":
		line = msg.Response
	case msg.Command != "":
		line = commandLine(msg)
	default:
		return fmt.Errorf("empty message")
	}
	line = strings.ReplaceAll(line, "\n", `\n`)
	_, err := w.Write([]byte(line + "\n"))
	return err
}

func commandLine(msg *Message) string {
	parts := append([]string{msg.Command}, msg.Args...)
	keys := make([]string, 0, len(msg.Options))
	for k := range msg.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, msg.Options[k]))
	}
	return strings.Join(parts, " ")
}

// Decode reads a newline-terminated message.
func (LineFormat) Decode(r io.Reader) (*Message, error) {
	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(line)
	text = strings.ReplaceAll(text, `\n`, "\n")

	// Parse error response
	if strings.HasPrefix(text, "error: ") {
		return &Message{Error: strings.TrimPrefix(text, "error: ")}, nil
	}

	// Context determines if this is command or response
	msg := &Message{Response: text}
	fields := strings.Fields(text)
	if len(fields) > 0 {
		msg.Command = fields[0]
		msg.Args, msg.Options = ParseArgs(fields[1:])
	}
	return msg, nil
}

// JSONFormat implements a JSON-based wire format.
// Each message is a single JSON object followed by a newline. Numbers in
// options are kept as json.Number so large integers survive.
type JSONFormat struct{}

// Encode writes a message as JSON.
func (JSONFormat) Encode(w io.Writer, msg *Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// Decode reads a JSON message.
func (JSONFormat) Decode(r io.Reader) (*Message, error) {
	reader := bufio.NewReader(r)
	line, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()
	var msg Message
	if err := dec.Decode(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// DefaultWireFormat is the wire format used by default.
var DefaultWireFormat WireFormat = JSONFormat{}

// ParseArgs splits command-line words into positional arguments and
// key=value options. Option values stay strings; the receiving side
// converts them per declared parameter.
func ParseArgs(words []string) ([]string, map[string]any) {
	var args []string
	var options map[string]any
	for _, w := range words {
		if idx := strings.Index(w, "="); idx > 0 {
			if options == nil {
				options = make(map[string]any)
			}
			options[w[:idx]] = w[idx+1:]
			continue
		}
		args = append(args, w)
	}
	return args, options
}
