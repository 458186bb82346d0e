package graymatter

import (
	"regexp"
	"strings"
	"unicode"
)

// DefaultDelimiter is the fence token used when Delimiter is left
// empty.
const DefaultDelimiter = "---"

// commentLine matches a full-line "#" comment inside a captured front
// matter block, together with any whitespace (including the preceding
// line break) before the "#".
var commentLine = regexp.MustCompile(`(?m)^\s*#[^\n]+`)

// part tracks which region of the document the scanner is in.
type part int

const (
	partMatter part = iota
	partMaybeExcerpt
	partContent
)

// Matter parses front matter using a format [Engine] bound at
// construction and the delimiters configured on the struct.
//
// A Matter is safe to reuse across any number of Parse calls, and safe
// for concurrent use as long as Delimiter and ExcerptDelimiter are not
// mutated while a parse is in flight: both are read once at the start
// of each call.
type Matter struct {
	// Delimiter is the fence token that opens and closes the front
	// matter block. A line matches only if it equals the token after
	// trailing whitespace is trimmed. Empty means DefaultDelimiter.
	Delimiter string

	// ExcerptDelimiter terminates the excerpt. Empty means "use
	// Delimiter".
	ExcerptDelimiter string

	engine Engine
}

// New returns a Matter bound to engine, with the default "---"
// delimiter.
func New(engine Engine) *Matter {
	return &Matter{
		Delimiter: DefaultDelimiter,
		engine:    engine,
	}
}

// Parse extracts front matter, excerpt and content from input. It never
// fails: a missing or undecodable front matter block and a missing
// excerpt surface as nil fields on the returned entity.
func (m *Matter) Parse(input string) ParsedEntity {
	entity := ParsedEntity{Orig: input}

	delimiter := m.Delimiter
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	excerptDelimiter := m.ExcerptDelimiter
	if excerptDelimiter == "" {
		excerptDelimiter = delimiter
	}

	// Too short to hold even a lone fence line.
	if len(input) <= len(delimiter) {
		return entity
	}

	// A front matter block requires the fence alone on the first line.
	// Anything else and the whole input, first line included, is
	// scanned for an excerpt instead.
	looking := partMaybeExcerpt
	rest := input
	if first, remainder, found := strings.Cut(input, "\n"); found && trimEnd(first) == delimiter {
		looking = partMatter
		rest = remainder
	}

	// acc holds everything seen since the last fence consumed. Note it
	// grows before the fence check, so a closing fence line is part of
	// the accumulated text and is stripped off again below.
	var acc strings.Builder
	for _, line := range splitLines(rest) {
		acc.WriteByte('\n')
		acc.WriteString(line)

		switch looking {
		case partMatter:
			if trimEnd(line) != delimiter {
				continue
			}
			matter := strings.TrimSpace(commentLine.ReplaceAllString(acc.String(), ""))
			if stripped, ok := strings.CutSuffix(matter, delimiter); ok {
				matter = strings.Trim(stripped, "\n")
				if matter != "" {
					entity.Matter = matter
					if m.engine != nil {
						if value, err := m.engine.Parse(matter); err == nil {
							entity.Data = &value
						}
					}
				}
			}
			acc.Reset()
			looking = partMaybeExcerpt

		case partMaybeExcerpt:
			if trimEnd(line) != excerptDelimiter {
				continue
			}
			// No accumulator reset: the excerpt text stays part of the
			// content that follows.
			if stripped, ok := strings.CutSuffix(strings.TrimSpace(acc.String()), excerptDelimiter); ok {
				excerpt := strings.Trim(stripped, "\n")
				entity.Excerpt = &excerpt
			}
			looking = partContent

		case partContent:
		}
	}

	entity.Content = strings.TrimSpace(acc.String())
	return entity
}

// ParseWithStruct parses input and decodes any front matter into T.
// It reports ok == false when no front matter was found or when the
// decoded value does not fit T; the two cases are indistinguishable by
// design. A package-level function because Go methods cannot take type
// parameters.
func ParseWithStruct[T any](m *Matter, input string) (ParsedEntityStruct[T], bool) {
	entity := m.Parse(input)
	if entity.Data == nil {
		return ParsedEntityStruct[T]{}, false
	}
	var data T
	if err := entity.Data.Decode(&data); err != nil {
		return ParsedEntityStruct[T]{}, false
	}
	return ParsedEntityStruct[T]{
		Data:    data,
		Content: entity.Content,
		Excerpt: entity.Excerpt,
		Orig:    entity.Orig,
		Matter:  entity.Matter,
	}, true
}

// trimEnd trims trailing whitespace, the normalization applied to a
// line before it is compared against a fence token.
func trimEnd(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}

// splitLines splits s on "\n" without yielding a phantom empty line
// after a trailing newline, and drops the "\r" of CRLF line endings.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
