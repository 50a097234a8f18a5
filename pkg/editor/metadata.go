package editor

import (
	"strconv"
	"strings"

	"github.com/tastebook/tastebook-cli/pkg/models"
)

// commitMetadata writes a single-value metadata field. Numeric fields
// coerce non-numeric or blank input to nil instead of keeping stale data
// or failing; category and difficulty are constrained to their option
// sets, and an out-of-set value declines the commit so the field keeps
// its pre-edit value. None of these outcomes surface as errors: the only
// consumer is the user who just typed the value.
func commitMetadata(doc *Document, ref FieldRef, pending map[string]string) {
	v := strings.TrimSpace(pending[SubValue])
	switch ref.Meta {
	case MetaName:
		doc.ApplyPatch(Patch{PatchName: v})
	case MetaDescription:
		doc.ApplyPatch(Patch{PatchDescription: v})
	case MetaCategory:
		v = strings.ToLower(v)
		if models.ValidCategory(v) {
			doc.ApplyPatch(Patch{PatchCategory: v})
		}
	case MetaDifficulty:
		v = strings.ToLower(v)
		if models.ValidDifficulty(v) {
			doc.ApplyPatch(Patch{PatchDifficulty: v})
		}
	case MetaServings:
		doc.ApplyPatch(Patch{PatchServings: parseOptionalInt(v)})
	case MetaPrepTime:
		doc.ApplyPatch(Patch{PatchPrepTime: parseOptionalInt(v)})
	case MetaCookTime:
		doc.ApplyPatch(Patch{PatchCookTime: parseOptionalInt(v)})
	}
}

// parseOptionalInt coerces user input to an optional integer. Blank,
// non-numeric, and negative input all become nil.
func parseOptionalInt(v string) *int {
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
