// Package editor implements the single-field editing core for recipes:
// a document wrapper that applies committed patches, an edit session that
// buffers exactly one field's pending values at a time, per-section commit
// logic, and the policy deciding whether an interaction outside the active
// field commits the session.
package editor

import (
	"fmt"
	"strings"
)

// Component identifies which section of the recipe an edit targets.
type Component int

const (
	ComponentNone Component = iota
	ComponentIngredients
	ComponentInstructions
	ComponentMetadata
	ComponentTags
	ComponentComments
)

// String returns a human-readable component name.
func (c Component) String() string {
	switch c {
	case ComponentIngredients:
		return "ingredients"
	case ComponentInstructions:
		return "instructions"
	case ComponentMetadata:
		return "metadata"
	case ComponentTags:
		return "tags"
	case ComponentComments:
		return "comments"
	default:
		return "none"
	}
}

// FieldKind discriminates the variants of FieldRef.
type FieldKind int

const (
	KindNone FieldKind = iota
	KindIngredient
	KindIngredientStageTitle
	KindInstruction
	KindInstructionStageTitle
	KindMeta
	KindTag
	KindComments
)

// MetaField names a single-value metadata field.
type MetaField string

const (
	MetaName        MetaField = "name"
	MetaDescription MetaField = "description"
	MetaCategory    MetaField = "category"
	MetaDifficulty  MetaField = "difficulty"
	MetaServings    MetaField = "servings"
	MetaPrepTime    MetaField = "prep_time"
	MetaCookTime    MetaField = "cook_time"
)

// NewTagIndex is the sentinel TagIndex distinguishing "adding a new tag"
// from editing the tag at a real index.
const NewTagIndex = -1

// Sub-field keys used in a session's pending values. Ingredient rows use
// the three compound keys; every other field uses SubValue.
const (
	SubAmount = "amount"
	SubUnit   = "unit"
	SubItem   = "item"
	SubValue  = "value"
)

// FieldRef locates one atomic field in the document. Which fields are
// meaningful depends on Kind:
//
//	KindIngredient            ItemID, StageID ("" when the shape is flat)
//	KindIngredientStageTitle  StageID
//	KindInstruction           ItemID, StageID ("" when the shape is flat)
//	KindInstructionStageTitle StageID
//	KindMeta                  Meta
//	KindTag                   TagIndex (NewTagIndex for the add affordance)
//	KindComments              nothing
//
// Items and stages are located by identity key, never by cached index, so
// a reference stays valid across reorders and deletions of other rows.
type FieldRef struct {
	Kind     FieldKind
	StageID  string
	ItemID   string
	Meta     MetaField
	TagIndex int
}

// Component returns the section the reference belongs to.
func (f FieldRef) Component() Component {
	switch f.Kind {
	case KindIngredient, KindIngredientStageTitle:
		return ComponentIngredients
	case KindInstruction, KindInstructionStageTitle:
		return ComponentInstructions
	case KindMeta:
		return ComponentMetadata
	case KindTag:
		return ComponentTags
	case KindComments:
		return ComponentComments
	default:
		return ComponentNone
	}
}

// IngredientRef builds a reference to one ingredient row. stageID is ""
// for the flat shape.
func IngredientRef(stageID, itemID string) FieldRef {
	return FieldRef{Kind: KindIngredient, StageID: stageID, ItemID: itemID}
}

// IngredientStageTitleRef builds a reference to an ingredient stage title.
func IngredientStageTitleRef(stageID string) FieldRef {
	return FieldRef{Kind: KindIngredientStageTitle, StageID: stageID}
}

// InstructionRef builds a reference to one instruction line. stageID is ""
// for the flat shape.
func InstructionRef(stageID, itemID string) FieldRef {
	return FieldRef{Kind: KindInstruction, StageID: stageID, ItemID: itemID}
}

// InstructionStageTitleRef builds a reference to an instruction stage title.
func InstructionStageTitleRef(stageID string) FieldRef {
	return FieldRef{Kind: KindInstructionStageTitle, StageID: stageID}
}

// MetaRef builds a reference to a metadata field.
func MetaRef(m MetaField) FieldRef {
	return FieldRef{Kind: KindMeta, Meta: m}
}

// TagRef builds a reference to the tag at index i, or to the add
// affordance when i is NewTagIndex.
func TagRef(i int) FieldRef {
	return FieldRef{Kind: KindTag, TagIndex: i}
}

// CommentsRef builds a reference to the comments field.
func CommentsRef() FieldRef {
	return FieldRef{Kind: KindComments}
}

// SameItem reports whether two references target the same structural
// ingredient or instruction row (same stage, same item). Stage titles and
// single-value fields are their own item.
func (f FieldRef) SameItem(other FieldRef) bool {
	if f.Kind != other.Kind {
		return false
	}
	switch f.Kind {
	case KindIngredient, KindInstruction:
		return f.StageID == other.StageID && f.ItemID == other.ItemID
	case KindIngredientStageTitle, KindInstructionStageTitle:
		return f.StageID == other.StageID
	case KindMeta:
		return f.Meta == other.Meta
	case KindTag:
		return f.TagIndex == other.TagIndex
	case KindComments:
		return true
	default:
		return false
	}
}

// String encodes the reference for the UI boundary (list row IDs, debug
// output). ParseFieldRef is its inverse.
func (f FieldRef) String() string {
	switch f.Kind {
	case KindIngredient:
		return fmt.Sprintf("ingredient/%s/%s", f.StageID, f.ItemID)
	case KindIngredientStageTitle:
		return fmt.Sprintf("ingredient-stage/%s", f.StageID)
	case KindInstruction:
		return fmt.Sprintf("instruction/%s/%s", f.StageID, f.ItemID)
	case KindInstructionStageTitle:
		return fmt.Sprintf("instruction-stage/%s", f.StageID)
	case KindMeta:
		return fmt.Sprintf("meta/%s", f.Meta)
	case KindTag:
		if f.TagIndex == NewTagIndex {
			return "tag/new"
		}
		return fmt.Sprintf("tag/%d", f.TagIndex)
	case KindComments:
		return "comments"
	default:
		return "none"
	}
}

// ParseFieldRef decodes a string produced by FieldRef.String. It is the
// only place the string form is interpreted; everything past this boundary
// works with the structured reference.
func ParseFieldRef(s string) (FieldRef, error) {
	if s == "comments" {
		return CommentsRef(), nil
	}
	parts := strings.Split(s, "/")
	switch parts[0] {
	case "ingredient":
		if len(parts) != 3 {
			return FieldRef{}, fmt.Errorf("malformed ingredient ref %q", s)
		}
		return IngredientRef(parts[1], parts[2]), nil
	case "ingredient-stage":
		if len(parts) != 2 {
			return FieldRef{}, fmt.Errorf("malformed ingredient stage ref %q", s)
		}
		return IngredientStageTitleRef(parts[1]), nil
	case "instruction":
		if len(parts) != 3 {
			return FieldRef{}, fmt.Errorf("malformed instruction ref %q", s)
		}
		return InstructionRef(parts[1], parts[2]), nil
	case "instruction-stage":
		if len(parts) != 2 {
			return FieldRef{}, fmt.Errorf("malformed instruction stage ref %q", s)
		}
		return InstructionStageTitleRef(parts[1]), nil
	case "meta":
		if len(parts) != 2 {
			return FieldRef{}, fmt.Errorf("malformed meta ref %q", s)
		}
		return MetaRef(MetaField(parts[1])), nil
	case "tag":
		if len(parts) != 2 {
			return FieldRef{}, fmt.Errorf("malformed tag ref %q", s)
		}
		if parts[1] == "new" {
			return TagRef(NewTagIndex), nil
		}
		var i int
		if _, err := fmt.Sscanf(parts[1], "%d", &i); err != nil {
			return FieldRef{}, fmt.Errorf("malformed tag index in %q", s)
		}
		return TagRef(i), nil
	}
	return FieldRef{}, fmt.Errorf("unknown field ref %q", s)
}
