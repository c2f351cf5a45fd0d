package cli

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Output writes either a text rendering or the JSON form of a value.
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new Output formatter.
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// JSON reports whether output is JSON.
func (o *Output) JSON() bool {
	return o.format == "json"
}

// Print writes data as indented JSON, or calls text otherwise.
func (o *Output) Print(data any, text func(w io.Writer)) error {
	if !o.JSON() {
		text(o.w)
		return nil
	}
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(o.w, string(b))
	return err
}

// Printf writes a text-only line; JSON output skips it.
func (o *Output) Printf(format string, args ...any) {
	if o.JSON() {
		return
	}
	fmt.Fprintf(o.w, format, args...)
}
