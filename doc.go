// Package graymatter extracts front matter metadata and an optional
// excerpt from the head of a text document, leaving the remainder as
// body content.
//
// Front matter is delimited by lines containing only the fence token,
// "---" by default. The text between the opening and closing fences is
// decoded by a pluggable format [Engine] (YAML, TOML or JSON ship with
// the package). An optional excerpt may follow the front matter block,
// terminated by a second fence line (or a dedicated excerpt delimiter).
//
// # Basic Usage
//
//	matter := graymatter.New(graymatter.YAMLEngine{})
//	entity := matter.Parse("---\ntitle: Home\n---\nOther stuff")
//
//	// entity.Content == "Other stuff"
//	// entity.Data holds the decoded front matter
//
// To decode directly into a struct, use [ParseWithStruct]:
//
//	type Config struct {
//		Title string
//	}
//
//	result, ok := graymatter.ParseWithStruct[Config](matter, input)
//	if ok {
//		fmt.Println(result.Data.Title)
//	}
//
// # Delimiters
//
// Fence detection operates on raw source lines: a line matches only if
// it equals the fence token after trailing whitespace is trimmed. Text
// that merely resembles a fence, such as a quoted "---" inside a
// metadata value or a line with trailing characters, never terminates
// the block. Both Unix (LF) and Windows (CRLF) line endings are handled.
//
// # Error Handling
//
// [Matter.Parse] is total: it never fails, for any input. A missing
// block, an empty or comment-only block, and a block the engine cannot
// decode all surface as a nil Data field on the returned entity, with
// the raw captured block still available in the Matter field. Likewise
// [ParseWithStruct] reports absent or undecodable front matter with
// ok == false rather than an error.
package graymatter
