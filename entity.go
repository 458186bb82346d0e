package graymatter

// ParsedEntity is the result of a [Matter.Parse] call.
type ParsedEntity struct {
	// Data holds the decoded front matter. It is nil when no front
	// matter block was found, when the block was empty or comment-only,
	// or when the engine failed to decode it.
	Data *Value

	// Content is the body text after the front matter block (and after
	// any excerpt delimiter line), trimmed of surrounding whitespace.
	Content string

	// Excerpt is the text between the front matter block (or the start
	// of input) and the excerpt delimiter. It is nil when no excerpt
	// delimiter line was found.
	Excerpt *string

	// Orig is the verbatim input.
	Orig string

	// Matter is the raw text of the front matter block as captured,
	// after comment lines are stripped but before decoding. It is empty
	// when no block was found.
	Matter string
}

// ParsedEntityStruct is the result of a [ParseWithStruct] call: a
// [ParsedEntity] whose front matter has been decoded into T.
type ParsedEntityStruct[T any] struct {
	// Data is the front matter decoded into T.
	Data T

	// Content is the body text after the front matter block.
	Content string

	// Excerpt is the text before the excerpt delimiter, nil when no
	// excerpt delimiter line was found.
	Excerpt *string

	// Orig is the verbatim input.
	Orig string

	// Matter is the raw captured front matter block.
	Matter string
}
