package actionsheet

// GridColumns is the number of tiles per grid row.
const GridColumns = 3

// Arrange groups actions for display. List mode yields one single-action group
// per action; grid mode yields rows of up to GridColumns actions, the last of
// which may be partial. Insertion order is preserved in both.
func Arrange(actions []*Action, mode DisplayStyle) [][]*Action {
	if len(actions) == 0 {
		return nil
	}

	size := 1
	if mode == DisplayGrid {
		size = GridColumns
	}

	groups := make([][]*Action, 0, (len(actions)+size-1)/size)
	for start := 0; start < len(actions); start += size {
		end := min(start+size, len(actions))
		group := make([]*Action, end-start)
		copy(group, actions[start:end])
		groups = append(groups, group)
	}
	return groups
}
