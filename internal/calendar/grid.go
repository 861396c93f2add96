package calendar

const GridColumns = 25

// Slot is one position in a grid row. Empty slots pad the last row.
type Slot[T any] struct {
	Value T
	Empty bool
}

// Partition splits items into rows of exactly columns slots, in order.
func Partition[T any](items []T, columns int) [][]Slot[T] {
	if columns <= 0 || len(items) == 0 {
		return nil
	}

	rows := make([][]Slot[T], 0, (len(items)+columns-1)/columns)
	for i := 0; i < len(items); i += columns {
		row := make([]Slot[T], columns)
		for j := range row {
			if i+j < len(items) {
				row[j] = Slot[T]{Value: items[i+j]}
			} else {
				row[j] = Slot[T]{Empty: true}
			}
		}
		rows = append(rows, row)
	}

	return rows
}
