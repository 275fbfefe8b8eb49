package prompt

import "strings"

// Feature is one toggleable choice. Keys are unique within a prompt;
// labels need not be.
type Feature struct {
	Key         string
	Label       string
	Description string
}

const noNotice = -1

// featureSet holds the selection state of a feature list.
//
// Locked features are already active outside the prompt: they render
// checked, cannot be toggled and are never part of the result.
type featureSet struct {
	features []Feature
	checked  []bool
	locked   map[string]bool
	notice   int // index of the row replaced by the notice, or noNotice
}

func newFeatureSet(features []Feature, preChecked, locked []string) *featureSet {
	pre := toSet(preChecked)
	fs := &featureSet{
		features: features,
		checked:  make([]bool, len(features)),
		locked:   toSet(locked),
		notice:   noNotice,
	}
	for i, f := range features {
		fs.checked[i] = pre[f.Key]
	}
	return fs
}

// toggle flips row i, or raises the notice on it when it is locked.
func (fs *featureSet) toggle(i int) {
	if fs.locked[fs.features[i].Key] {
		fs.notice = i
		return
	}
	fs.checked[i] = !fs.checked[i]
	fs.notice = noNotice
}

func (fs *featureSet) clearNotice() {
	fs.notice = noNotice
}

func (fs *featureSet) isSelected(i int) bool {
	return fs.checked[i] && !fs.locked[fs.features[i].Key]
}

// selectedKeys returns the newly selected keys in input order.
func (fs *featureSet) selectedKeys() []string {
	keys := []string{}
	for i, f := range fs.features {
		if fs.isSelected(i) {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

func (fs *featureSet) selectedLabels() []string {
	var labels []string
	for i, f := range fs.features {
		if fs.isSelected(i) {
			labels = append(labels, f.Label)
		}
	}
	return labels
}

// line renders row i. The cursor style wins over the checked style.
func (fs *featureSet) line(r *renderer, i int, isCursor bool, notice string) string {
	if fs.notice == i {
		return r.notice("    " + notice)
	}

	f := fs.features[i]
	shownChecked := fs.checked[i] || fs.locked[f.Key]
	box := "[ ]"
	if shownChecked {
		box = "[x]"
	}
	text := "    " + box + " " + f.Label
	if f.Description != "" {
		text += ": " + f.Description
	}

	switch {
	case isCursor:
		return r.active(text)
	case shownChecked:
		return r.checked(text)
	default:
		return text
	}
}

func actionLine(r *renderer, label string, isCursor bool) string {
	text := "    > " + label
	if isCursor {
		return r.active(text)
	}
	return text
}

func joinOr(parts []string, sep, empty string) string {
	if len(parts) == 0 {
		return empty
	}
	return strings.Join(parts, sep)
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
