package skills

import "strings"

// Editor is the state machine over one comma-delimited skill input buffer.
// It owns the buffer text and the suggestion-open flag; the suggestion list
// itself is always derived from the buffer, so stale candidates can never be
// displayed.
//
// Timing concerns (the blur grace period, the refocus after a click) belong
// to the caller: the owner of the input schedules Blur after its grace delay
// and calls BeginSelect from the suggestion's press event so a selection in
// flight suppresses the pending close.
type Editor struct {
	catalog  *Catalog
	category Category

	buffer    string
	open      bool
	selecting bool
}

func NewEditor(catalog *Catalog, category Category) *Editor {
	return &Editor{catalog: catalog, category: category}
}

func (e *Editor) Buffer() string { return e.buffer }

// Suggestions returns the currently visible candidate list. It is empty
// whenever the active token is empty, the category has no candidates, or the
// list has been closed; those three states are indistinguishable to the
// caller.
func (e *Editor) Suggestions() []string {
	if !e.open {
		return nil
	}
	return e.catalog.Suggest(e.buffer, e.category)
}

// Input replaces the buffer with what the user has typed and reopens the
// suggestion list.
func (e *Editor) Input(buffer string) {
	e.buffer = buffer
	e.open = true
}

// CommaPressed commits the active token if it is non-empty and not a
// duplicate, otherwise just normalizes the trailing separator. Either way
// the user has declared the token finished, so suggestions close.
func (e *Editor) CommaPressed() {
	committed := committedTokens(e.buffer)
	active := ActiveToken(e.buffer)
	if active != "" && !containsFold(committed, active) {
		committed = append(committed, active)
	}
	if len(committed) > 0 {
		e.buffer = strings.Join(committed, Separator) + Separator
	} else {
		e.buffer = ""
	}
	e.open = false
}

// EnterPressed commits the active token; when the active token is empty or a
// duplicate and suggestions are showing, the first suggestion is committed
// instead.
func (e *Editor) EnterPressed() {
	committed := committedTokens(e.buffer)
	active := ActiveToken(e.buffer)

	if active != "" && !containsFold(committed, active) {
		e.buffer = strings.Join(append(committed, active), Separator)
		e.open = false
		return
	}

	if suggestions := e.Suggestions(); len(suggestions) > 0 {
		e.Select(suggestions[0])
		return
	}
	e.open = false
}

// Select replaces the active token with the chosen suggestion (or appends it
// when the active token is empty) and closes the list.
func (e *Editor) Select(choice string) {
	committed := committedTokens(e.buffer)
	if !containsFold(committed, choice) {
		committed = append(committed, choice)
	}
	e.buffer = strings.Join(committed, Separator)
	e.open = false
	e.selecting = false
}

// EscapePressed closes the suggestion list without touching the buffer.
func (e *Editor) EscapePressed() {
	e.open = false
}

// BeginSelect marks a click-driven selection as in flight so the blur that
// follows the click does not close the list before Select runs.
func (e *Editor) BeginSelect() {
	e.selecting = true
}

// Blur closes the suggestion list unless a selection is in flight.
func (e *Editor) Blur() {
	if e.selecting {
		return
	}
	e.open = false
}

// Focus reopens the suggestion list if the active token is non-empty and at
// least one candidate matches.
func (e *Editor) Focus() {
	if ActiveToken(e.buffer) == "" {
		return
	}
	if len(e.catalog.Suggest(e.buffer, e.category)) == 0 {
		return
	}
	e.open = true
}
