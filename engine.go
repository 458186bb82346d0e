package graymatter

// Engine decodes raw front matter text into a [Value]. One
// implementation exists per supported serialization format; the engine
// is bound to a [Matter] at construction and never changes for the
// parser's lifetime.
//
// Parse must accept arbitrary text and either return a decoded value or
// an error. [Matter.Parse] treats any engine error as "no front matter"
// rather than propagating it.
type Engine interface {
	Parse(text string) (Value, error)
}

// Encoder is implemented by engines that can also render a value back
// to text. [Matter.Stringify] requires the bound engine to implement
// it. All engines shipped with this package do.
type Encoder interface {
	Marshal(v any) ([]byte, error)
}
