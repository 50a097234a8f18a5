package editor

// Session is the edit-session state machine: Idle, or Editing exactly one
// field. Pending keystrokes accumulate here and reach the document only on
// Commit. At most one session is active per document; starting a new edit
// implicitly commits the previous one, so a keystroke is never silently
// lost when the user jumps between fields.
//
// All transitions are synchronous and single-threaded (UI event loop
// semantics); the one-active-session invariant is what stands in for
// locking.
type Session struct {
	doc     *Document
	active  bool
	field   FieldRef
	pending map[string]string
}

// NewSession creates an idle session over doc.
func NewSession(doc *Document) *Session {
	return &Session{doc: doc}
}

// Document returns the document the session edits.
func (s *Session) Document() *Document {
	return s.doc
}

// Active reports whether an edit is in progress.
func (s *Session) Active() bool {
	return s.active
}

// Field returns the reference being edited. Only meaningful while Active.
func (s *Session) Field() FieldRef {
	return s.field
}

// Component returns the section being edited, or ComponentNone when idle.
func (s *Session) Component() Component {
	if !s.active {
		return ComponentNone
	}
	return s.field.Component()
}

// Pending returns the uncommitted value for one sub-field key. Missing
// keys read as empty string.
func (s *Session) Pending(sub string) string {
	return s.pending[sub]
}

// Start begins editing ref with the given seed values, committing any
// prior session first. Pass the result of Document.Seed to seed from the
// current document state.
func (s *Session) Start(ref FieldRef, seed map[string]string) {
	if s.active {
		s.Commit()
	}
	s.active = true
	s.field = ref
	s.pending = make(map[string]string, len(seed))
	for k, v := range seed {
		s.pending[k] = v
	}
}

// StartEdit begins editing ref seeded from the document.
func (s *Session) StartEdit(ref FieldRef) {
	s.Start(ref, s.doc.Seed(ref))
}

// Update overwrites one pending sub-field value. No-op when idle.
func (s *Session) Update(sub, value string) {
	if !s.active {
		return
	}
	s.pending[sub] = value
}

// Commit hands the pending values to the section commit logic for the
// active component and returns to Idle. The transition to Idle is
// unconditional, even when the commit declines to mutate (out-of-set
// metadata value, duplicate tag, stale reference): a session that could
// stay stuck in Editing would freeze the UI above it.
func (s *Session) Commit() {
	if !s.active {
		return
	}
	ref, pending := s.field, s.pending
	s.clear()
	switch ref.Component() {
	case ComponentIngredients:
		commitIngredients(s.doc, ref, pending)
	case ComponentInstructions:
		commitInstructions(s.doc, ref, pending)
	case ComponentMetadata:
		commitMetadata(s.doc, ref, pending)
	case ComponentTags:
		commitTags(s.doc, ref, pending)
	case ComponentComments:
		commitComments(s.doc, ref, pending)
	}
}

// Cancel discards the pending values and returns to Idle. The document is
// not touched.
func (s *Session) Cancel() {
	if !s.active {
		return
	}
	s.clear()
}

func (s *Session) clear() {
	s.active = false
	s.field = FieldRef{}
	s.pending = nil
}

// ToggleIngredientShape commits or cancels any active ingredient edit and
// then toggles the ingredient representation. Shape changes under a live
// session would leave the session pointing into the discarded shape.
func (s *Session) ToggleIngredientShape() {
	if s.active && s.Component() == ComponentIngredients {
		s.Commit()
	}
	s.doc.ToggleIngredientShape()
}

// ToggleInstructionShape is ToggleIngredientShape for instructions.
func (s *Session) ToggleInstructionShape() {
	if s.active && s.Component() == ComponentInstructions {
		s.Commit()
	}
	s.doc.ToggleInstructionShape()
}
