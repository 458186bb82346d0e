package graymatter

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Stringify renders data and content back into a fenced document:
// the encoded front matter wrapped in delimiter lines, a blank line,
// then content with a guaranteed trailing newline. The result parses
// back to the same data and content.
//
// It returns an error if the bound engine does not implement [Encoder]
// or if encoding fails.
func (m *Matter) Stringify(data any, content string) (string, error) {
	if m.engine == nil {
		return "", errors.New("no engine bound")
	}
	enc, ok := m.engine.(Encoder)
	if !ok {
		return "", errors.Newf("engine %T does not support encoding", m.engine)
	}

	delimiter := m.Delimiter
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	matter, err := enc.Marshal(data)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	buf.WriteString(delimiter)
	buf.WriteByte('\n')
	buf.Write(matter)
	if len(matter) > 0 && matter[len(matter)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteString(delimiter)
	buf.WriteByte('\n')
	if content != "" {
		buf.WriteByte('\n')
		buf.WriteString(content)
		if !strings.HasSuffix(content, "\n") {
			buf.WriteByte('\n')
		}
	}
	return buf.String(), nil
}
