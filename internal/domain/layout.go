package domain

// LayoutKind selects how menu buttons are arranged
type LayoutKind string

const (
	LayoutVertical   LayoutKind = "vertical"
	LayoutHorizontal LayoutKind = "horizontal"
	LayoutGrid       LayoutKind = "grid"
)

const defaultGridColumns = 2

// Layout is the BUTTON_LAYOUT descriptor
type Layout struct {
	Type        LayoutKind `json:"type"`
	GridColumns int        `json:"grid_columns"`
}

// Key is a rendered menu button
type Key struct {
	ID    string
	Label string
}

// Columns returns the grid width, defaulting to 2
func (l Layout) Columns() int {
	if l.GridColumns < 1 {
		return defaultGridColumns
	}
	return l.GridColumns
}

// Arrange splits keys into keyboard rows
func (l Layout) Arrange(keys []Key) [][]Key {
	if len(keys) == 0 {
		return nil
	}

	switch l.Type {
	case LayoutHorizontal:
		return [][]Key{keys}
	case LayoutGrid:
		cols := l.Columns()
		rows := make([][]Key, 0, (len(keys)+cols-1)/cols)
		for start := 0; start < len(keys); start += cols {
			end := start + cols
			if end > len(keys) {
				end = len(keys)
			}
			rows = append(rows, keys[start:end])
		}
		return rows
	default:
		rows := make([][]Key, 0, len(keys))
		for _, k := range keys {
			rows = append(rows, []Key{k})
		}
		return rows
	}
}
