package editor

import (
	"strings"

	"github.com/tastebook/tastebook-cli/pkg/models"
)

// commitTags handles both the add affordance (TagIndex == NewTagIndex)
// and edits of an existing tag. Values are trimmed; an empty new tag is a
// no-op, an empty edit deletes the tag, and a duplicate of another tag
// declines the commit. Tag order is display order and is never sorted.
func commitTags(doc *Document, ref FieldRef, pending map[string]string) {
	r := doc.Recipe()
	v := strings.TrimSpace(pending[SubValue])

	if ref.TagIndex == NewTagIndex {
		if v == "" || models.HasTag(r.Tags, v) {
			return
		}
		doc.ApplyPatch(Patch{PatchTags: append(append([]string{}, r.Tags...), v)})
		return
	}

	if ref.TagIndex < 0 || ref.TagIndex >= len(r.Tags) {
		return
	}
	if v == "" {
		tags := append([]string{}, r.Tags...)
		doc.ApplyPatch(Patch{PatchTags: append(tags[:ref.TagIndex], tags[ref.TagIndex+1:]...)})
		return
	}
	for i, t := range r.Tags {
		if t == v && i != ref.TagIndex {
			return
		}
	}
	tags := append([]string{}, r.Tags...)
	tags[ref.TagIndex] = v
	doc.ApplyPatch(Patch{PatchTags: tags})
}

// RemoveTag deletes the tag at index i directly, without going through an
// edit session. Out-of-range indices are no-ops.
func (s *Session) RemoveTag(i int) {
	if s.active {
		if s.field.Kind == KindTag && s.field.TagIndex == i {
			s.Cancel()
		} else {
			s.Commit()
		}
	}
	r := s.doc.Recipe()
	if i < 0 || i >= len(r.Tags) {
		return
	}
	tags := append([]string{}, r.Tags...)
	s.doc.ApplyPatch(Patch{PatchTags: append(tags[:i], tags[i+1:]...)})
}
