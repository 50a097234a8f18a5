package editor

// commitComments is a passthrough: the comment is free multi-line text
// and, unlike list rows, a blank comment is a valid value and is kept.
func commitComments(doc *Document, _ FieldRef, pending map[string]string) {
	doc.ApplyPatch(Patch{PatchComments: pending[SubValue]})
}
