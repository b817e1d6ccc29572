package view

// Neighbors returns the previous and next identifiers around id in a
// collection of total items numbered 1..total, wrapping at both ends.
func Neighbors(id, total int) (prev, next int) {
	if id == 1 {
		prev = total
	} else {
		prev = id - 1
	}

	if id == total {
		next = 1
	} else {
		next = id + 1
	}

	return prev, next
}
