package scene

// Layout is the absolute 1-based origin of the tree's top-left cell
type Layout struct {
	BaseRow int
	BaseCol int
}

// Center places a width x height block in the middle of a cols x rows terminal
// Coordinates never go below 1
func Center(cols, rows, width, height int) Layout {
	return Layout{
		BaseRow: max(1, (rows-height)/2+1),
		BaseCol: max(1, (cols-width)/2+1),
	}
}
