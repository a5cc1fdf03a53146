package tree

import (
	"notedeck/internal/domain/models"
)

// DropPosition says where a dragged folder lands relative to the drop
// target: spliced in as a sibling, or nested as the last child.
type DropPosition string

const (
	DropBefore DropPosition = "before"
	DropAfter  DropPosition = "after"
	DropInside DropPosition = "inside"
)

// DropZoneForOffset maps the pointer's vertical offset within the target
// row to a drop position. The row splits into three zones so flat
// reordering and nesting share one gesture: top quartile inserts before,
// bottom quartile inserts after, the middle half nests inside.
func DropZoneForOffset(offsetY, rowHeight float64) DropPosition {
	if rowHeight <= 0 {
		return DropInside
	}
	switch {
	case offsetY < rowHeight*0.25:
		return DropBefore
	case offsetY > rowHeight*0.75:
		return DropAfter
	default:
		return DropInside
	}
}

// Reparent moves draggedID relative to targetID. Before/after keep the
// target's parent and splice the dragged folder into the target's sibling
// order; inside nests it as the target's last child.
//
// Illegal moves - dropping a folder on itself or onto any of its own
// descendants - return the input unchanged with changed=false; a drag
// gesture that cannot land should just snap back, not error.
func Reparent(folders []models.Folder, draggedID, targetID string, pos DropPosition) (result []models.Folder, changed bool) {
	if draggedID == targetID {
		return folders, false
	}
	di, ok := find(folders, draggedID)
	if !ok {
		return folders, false
	}
	ti, ok := find(folders, targetID)
	if !ok {
		return folders, false
	}
	if _, isDescendant := DescendantIDs(folders, draggedID)[targetID]; isDescendant {
		return folders, false
	}

	out := clone(folders)
	oldParent := out[di].ParentID
	target := out[ti]

	switch pos {
	case DropInside:
		// Append as the last child. Splicing keeps the destination
		// ranks dense even when the target already is the dragged
		// folder's parent and the move only shuffles it to the end.
		siblings := childrenExcept(out, &target.ID, draggedID)
		out[di].ParentID = &target.ID
		rankSpliced(out, siblings, draggedID, len(siblings))
	case DropBefore, DropAfter:
		siblings := childrenExcept(out, target.ParentID, draggedID)
		at := 0
		for i, s := range siblings {
			if s.ID == targetID {
				at = i
				if pos == DropAfter {
					at = i + 1
				}
				break
			}
		}
		out[di].ParentID = target.ParentID
		rankSpliced(out, siblings, draggedID, at)
	default:
		return folders, false
	}

	// Close the gap left in the old sibling list, unless the move stayed
	// within it (the splice already produced dense ranks there).
	if !models.SameParent(oldParent, out[di].ParentID) {
		rerank(out, oldParent)
	}
	return out, true
}

// childrenExcept returns the ordered children of parentID with one
// folder filtered out, so a folder being moved doesn't count among the
// siblings it is spliced into.
func childrenExcept(folders []models.Folder, parentID *string, exceptID string) []models.Folder {
	all := Children(folders, parentID)
	out := all[:0]
	for _, f := range all {
		if f.ID != exceptID {
			out = append(out, f)
		}
	}
	return out
}

// rankSpliced writes dense ranks for a sibling list with draggedID
// inserted at position at.
func rankSpliced(folders []models.Folder, siblings []models.Folder, draggedID string, at int) {
	ordered := make([]string, 0, len(siblings)+1)
	for _, s := range siblings {
		ordered = append(ordered, s.ID)
	}
	if at < 0 {
		at = 0
	}
	if at > len(ordered) {
		at = len(ordered)
	}
	ordered = append(ordered[:at], append([]string{draggedID}, ordered[at:]...)...)

	rank := make(map[string]int, len(ordered))
	for i, id := range ordered {
		rank[id] = i
	}
	for i := range folders {
		if r, ok := rank[folders[i].ID]; ok {
			folders[i].Order = r
		}
	}
}
