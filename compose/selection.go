package compose

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Ref addresses an option by its position in the parsed document. Section
// keys are not unique, so positions are the only stable identity.
type Ref struct {
	Section   int
	Dimension int
	Option    int
}

func (ref Ref) String() string {
	return fmt.Sprintf("%d.%d.%d", ref.Section, ref.Dimension, ref.Option)
}

// ParseRef parses the "section.dimension.option" form produced by
// Ref.String.
func ParseRef(value string) (Ref, error) {
	parts := strings.Split(value, ".")
	if len(parts) != 3 {
		return Ref{}, fmt.Errorf("invalid option reference: %q", value)
	}

	var numbers [3]int
	for i, part := range parts {
		number, err := strconv.Atoi(part)
		if err != nil || number < 0 {
			return Ref{}, fmt.Errorf("invalid option reference: %q", value)
		}

		numbers[i] = number
	}

	return Ref{Section: numbers[0], Dimension: numbers[1], Option: numbers[2]}, nil
}

func (ref Ref) less(other Ref) bool {
	if ref.Section != other.Section {
		return ref.Section < other.Section
	}
	if ref.Dimension != other.Dimension {
		return ref.Dimension < other.Dimension
	}
	return ref.Option < other.Option
}

// Selection is the set of options toggled on by a user. It is plain state
// owned by whoever renders the form; it's not safe for concurrent mutation.
type Selection struct {
	selected map[Ref]struct{}
}

func NewSelection(refs ...Ref) *Selection {
	selection := &Selection{selected: map[Ref]struct{}{}}
	for _, ref := range refs {
		selection.Set(ref, true)
	}

	return selection
}

// Toggle flips the option and returns whether it is selected now.
func (selection *Selection) Toggle(ref Ref) bool {
	selected := !selection.IsSelected(ref)
	selection.Set(ref, selected)

	return selected
}

func (selection *Selection) Set(ref Ref, selected bool) {
	if selection.selected == nil {
		selection.selected = map[Ref]struct{}{}
	}

	if selected {
		selection.selected[ref] = struct{}{}
	} else {
		delete(selection.selected, ref)
	}
}

func (selection *Selection) IsSelected(ref Ref) bool {
	if selection == nil {
		return false
	}

	_, ok := selection.selected[ref]
	return ok
}

func (selection *Selection) Reset() {
	selection.selected = map[Ref]struct{}{}
}

func (selection *Selection) Len() int {
	if selection == nil {
		return 0
	}

	return len(selection.selected)
}

// Refs returns selected options in document order.
func (selection *Selection) Refs() []Ref {
	if selection == nil {
		return nil
	}

	refs := make([]Ref, 0, len(selection.selected))
	for ref := range selection.selected {
		refs = append(refs, ref)
	}

	sort.Slice(refs, func(i, j int) bool {
		return refs[i].less(refs[j])
	})

	return refs
}
