package editor

// Target describes the region a pointer or focus event landed on, as seen
// by the outside-commit policy.
type Target struct {
	// Field is the editable field under the interaction, when there is
	// one; HasField distinguishes "no field" from the zero reference.
	Field    FieldRef
	HasField bool

	// SelectControl marks option-picker controls whose internal
	// interactions (opening, scrolling the option list) must not commit
	// the active edit.
	SelectControl bool

	// NonCommitting marks controls explicitly flagged to never commit,
	// such as a dropdown's own listbox rows.
	NonCommitting bool
}

// ShouldCommit decides whether an interaction on target commits the
// active session. Naive blur-commits semantics would break multi-sub-field
// rows: a click from the amount box to the unit box of the same ingredient
// must not commit the half-typed row, so interactions inside the same
// structural item are ignored.
func ShouldCommit(s *Session, target Target) bool {
	if !s.Active() {
		return false
	}
	if target.SelectControl || target.NonCommitting {
		return false
	}
	if s.Component() == ComponentIngredients && target.HasField &&
		s.Field().SameItem(target.Field) {
		return false
	}
	return true
}

// HandleOutside applies the policy: commit when ShouldCommit says so.
// Returns whether a commit happened.
func HandleOutside(s *Session, target Target) bool {
	if !ShouldCommit(s, target) {
		return false
	}
	s.Commit()
	return true
}
