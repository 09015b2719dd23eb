// Package components provides small composable lipgloss renderers.
//
// Every component renders to a string through View and, when it implements
// ContextualRenderable, through ViewWithContext, which carries width and
// height limits down the tree. Styling is a base lipgloss.Style plus a chain
// of StyleFunc appliers folded in order:
//
//	row := HStack(
//		NewText("›"),
//		NewText("Mail").WithAppliers(Foreground(lipgloss.Color("212"))),
//	).WithGap(1)
//
//	box := NewContainer(row).
//		WithBorder(lipgloss.RoundedBorder()).
//		WithWidth(30)
//
// Primitive components are Text, Spacer and Divider. Stack arranges
// children vertically or horizontally and Container draws a border around
// them.
package components
