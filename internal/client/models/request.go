package models

// Mode selects the single operation an invocation performs.
type Mode int

const (
	ModeQuery Mode = iota
	ModeCreate
	ModeDelete
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeDelete:
		return "delete"
	default:
		return "query"
	}
}

// Request is the validated form of one invocation. It is built once by the
// command-line parser and passed by value to the operation it selects.
type Request struct {
	Mode       Mode
	Keyring    string
	Type       ItemType
	ID         uint32
	Attributes Attributes

	// Query output.
	Columns   []string
	NoNewline bool

	// Create only.
	Name   string
	Secret string
}

// HasID reports whether the request addresses a single item. Item ids start
// at 1, so 0 means "not given".
func (r Request) HasID() bool {
	return r.ID != 0
}

// Wants reports whether col is among the requested output columns.
func (r Request) Wants(col string) bool {
	for _, c := range r.Columns {
		if c == col {
			return true
		}
	}
	return false
}
