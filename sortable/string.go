package sortable

import "facette.io/natsort"

// String orders strings byte-wise, the same way the < operator does.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return s == other
}

func (s String) LessThan(other String) bool {
	return s < other
}

// NaturalString orders strings in natural sort order, treating runs of
// digits numerically (e.g. "file2" sorts before "file10").
//
// Two distinct strings that natsort considers equivalent (such as "a01" and
// "a1") fall back to byte-wise order so the ordering stays total.
type NaturalString string

var _ Sortable[NaturalString] = (*NaturalString)(nil)

func (s NaturalString) Equals(other NaturalString) bool {
	return s == other
}

func (s NaturalString) LessThan(other NaturalString) bool {
	a, b := string(s), string(other)
	if a == b {
		return false
	}

	// natsort.Compare reports true for equivalent strings, so a verdict that
	// is the same both ways means the strings tie.
	ab, ba := natsort.Compare(a, b), natsort.Compare(b, a)
	if ab == ba {
		return a < b
	}

	return ab
}
