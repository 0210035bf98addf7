package intake

// DiffResult is the minimal set of pivot operations moving a book's author
// associations from their persisted state to the desired state.
type DiffResult struct {
	ToAdd    []int
	ToRemove []int
}

// Diff computes desired minus current (links to add) and current minus
// desired (links to remove). Inputs and outputs are sets; output order
// carries no meaning.
//
// Applying the result to current always yields exactly desired, and the
// computation is idempotent.
func Diff(current, desired []int) DiffResult {
	inCurrent := make(map[int]bool, len(current))
	for _, id := range current {
		inCurrent[id] = true
	}
	inDesired := make(map[int]bool, len(desired))
	for _, id := range desired {
		inDesired[id] = true
	}

	result := DiffResult{ToAdd: []int{}, ToRemove: []int{}}
	for _, id := range desired {
		if !inCurrent[id] {
			result.ToAdd = append(result.ToAdd, id)
			inCurrent[id] = true
		}
	}
	for _, id := range current {
		if inDesired[id] {
			continue
		}
		result.ToRemove = append(result.ToRemove, id)
		inDesired[id] = true
	}

	return result
}
