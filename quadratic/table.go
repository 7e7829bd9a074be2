package quadratic

// Table is a bijective mapping from basis labels to sequence numbers in
// [0, Size). It is built once per system configuration and shared read-only
// across all sweep evaluations; the matrix dimension always equals Size.
type Table struct {
	seq    map[Index]int // label → sequence number
	labels []Index       // sequence number → label
}

// NewTable builds a table assigning sequence number i to labels[i].
// Returns ErrEmptyTable for an empty slice and ErrDuplicateIndex when the
// same label appears twice (the mapping must stay bijective).
// Complexity: O(n) time and memory.
func NewTable(labels []Index) (*Table, error) {
	if len(labels) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{
		seq:    make(map[Index]int, len(labels)),
		labels: make([]Index, len(labels)),
	}
	for i, label := range labels {
		if _, ok := t.seq[label]; ok {
			return nil, ErrDuplicateIndex
		}
		t.seq[label] = i
		t.labels[i] = label
	}

	return t, nil
}

// Size reports the number of labels, i.e. the matrix dimension N.
// Complexity: O(1).
func (t *Table) Size() int { return len(t.labels) }

// Sequence returns the sequence number of label.
// Returns ErrUnknownIndex when the label is not part of the table.
// Complexity: O(1).
func (t *Table) Sequence(label Index) (int, error) {
	s, ok := t.seq[label]
	if !ok {
		return 0, ErrUnknownIndex
	}

	return s, nil
}

// Label returns the basis label assigned to sequence number s.
// Returns ErrSequenceRange when s is outside [0, Size).
// Complexity: O(1).
func (t *Table) Label(s int) (Index, error) {
	if s < 0 || s >= len(t.labels) {
		return Index{}, ErrSequenceRange
	}

	return t.labels[s], nil
}
