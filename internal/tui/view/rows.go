package view

// Rows maps logical result indices to visual list rows. Between consecutive
// items the list carries Gap blank separator rows, so with Gap 1 the items
// sit on rows 0, 2, 4 and so on. Each item row spans ItemLines screen lines;
// each separator row spans one.
type Rows struct {
	Count     int
	Gap       int
	ItemLines int
}

func (r Rows) stride() int {
	if r.Gap < 0 {
		return 1
	}
	return r.Gap + 1
}

func (r Rows) itemLines() int {
	if r.ItemLines < 1 {
		return 1
	}
	return r.ItemLines
}

// Len returns the number of visual rows, separators included.
func (r Rows) Len() int {
	if r.Count <= 0 {
		return 0
	}
	return (r.Count-1)*r.stride() + 1
}

// LogicalToVisual returns the visual row of item i.
func (r Rows) LogicalToVisual(i int) int {
	return i * r.stride()
}

// VisualToLogical returns the item on visual row v. It reports false for
// separator rows and rows outside the list.
func (r Rows) VisualToLogical(v int) (int, bool) {
	if v < 0 || v >= r.Len() || v%r.stride() != 0 {
		return 0, false
	}
	return v / r.stride(), true
}

// IsSeparator reports whether visual row v is a separator.
func (r Rows) IsSeparator(v int) bool {
	if v < 0 || v >= r.Len() {
		return false
	}
	return v%r.stride() != 0
}

// LineOf returns the first screen line of visual row v.
func (r Rows) LineOf(v int) int {
	items := v/r.stride() + boolToInt(v%r.stride() != 0)
	separators := v - items
	return items*r.itemLines() + separators
}

// TotalLines returns the height of the whole list in screen lines.
func (r Rows) TotalLines() int {
	n := r.Len()
	if n == 0 {
		return 0
	}
	return r.LineOf(n-1) + r.itemLines()
}

// RowAtLine returns the visual row covering screen line line.
func (r Rows) RowAtLine(line int) (int, bool) {
	if line < 0 || line >= r.TotalLines() {
		return 0, false
	}
	block := r.itemLines() + r.stride() - 1
	i := line / block
	offset := line % block
	if offset < r.itemLines() {
		return i * r.stride(), true
	}
	return i*r.stride() + 1 + offset - r.itemLines(), true
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
