package sortedset

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/amp-labs/amp-collections/optional"
	"github.com/amp-labs/amp-collections/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(values ...int) []sortable.Int {
	out := make([]sortable.Int, 0, len(values))
	for _, v := range values {
		out = append(out, sortable.Int(v))
	}

	return out
}

// requireConsistent checks that the slice is strictly ascending and that the
// presence index holds exactly its elements.
func requireConsistent[T Element[T]](t *testing.T, s SortedSet[T]) {
	t.Helper()

	impl, ok := s.(*sortedSet[T])
	require.True(t, ok)

	for i := 1; i < len(impl.sequence); i++ {
		require.True(t, impl.sequence[i-1].LessThan(impl.sequence[i]),
			"sequence out of order at %d: %v", i, impl.sequence)
	}

	require.Len(t, impl.presence, len(impl.sequence))

	for _, elem := range impl.sequence {
		_, present := impl.presence[elem]
		require.True(t, present, "element %v missing from presence index", elem)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates empty set", func(t *testing.T) {
		t.Parallel()

		s := New[sortable.Int]()
		require.NotNil(t, s)
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, []sortable.Int{}, s.Entries())
		requireConsistent(t, s)
	})

	t.Run("sorts and deduplicates initial elements", func(t *testing.T) {
		t.Parallel()

		s := New(ints(5, 3, 3, 1, 5)...)
		assert.Equal(t, ints(1, 3, 5), s.Entries())
		assert.Equal(t, 3, s.Len())
		requireConsistent(t, s)
	})

	t.Run("does not modify the input slice", func(t *testing.T) {
		t.Parallel()

		input := ints(3, 1, 2)
		s := FromSlice(input)

		assert.Equal(t, ints(3, 1, 2), input)
		assert.Equal(t, ints(1, 2, 3), s.Entries())
	})

	t.Run("works with strings", func(t *testing.T) {
		t.Parallel()

		s := New[sortable.String]("pear", "apple", "fig", "apple")
		assert.Equal(t, []sortable.String{"apple", "fig", "pear"}, s.Entries())
	})

	t.Run("instances do not share state", func(t *testing.T) {
		t.Parallel()

		a := New(ints(1, 2)...)
		b := New(ints(10)...)

		a.Add(3)
		b.Clear()

		assert.Equal(t, ints(1, 2, 3), a.Entries())
		assert.Equal(t, 0, b.Len())
	})
}

func TestAt(t *testing.T) {
	t.Parallel()

	s := New(ints(10, 20, 30)...)

	assert.Equal(t, optional.Some(sortable.Int(10)), s.At(0))
	assert.Equal(t, optional.Some(sortable.Int(30)), s.At(2))
	assert.True(t, s.At(10).Empty())
	assert.True(t, s.At(3).Empty())
	assert.True(t, s.At(-1).Empty())
	assert.Equal(t, s.At(1), s.Get(1))
}

func TestFirstLast(t *testing.T) {
	t.Parallel()

	s := New(ints(4, 2, 9)...)
	assert.Equal(t, optional.Some(sortable.Int(2)), s.First())
	assert.Equal(t, optional.Some(sortable.Int(9)), s.Last())

	empty := New[sortable.Int]()
	assert.True(t, empty.First().Empty())
	assert.True(t, empty.Last().Empty())
}

func TestEntriesIsACopy(t *testing.T) {
	t.Parallel()

	s := New(ints(1, 2, 3)...)

	entries := s.Entries()
	entries[0] = 100
	_ = append(entries[:1], 42)

	assert.Equal(t, ints(1, 2, 3), s.Entries())
	requireConsistent(t, s)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1,3,5", New(ints(5, 3, 1)...).String())
	assert.Empty(t, New[sortable.Int]().String())
	assert.Equal(t, "1.5,2", New[sortable.Float64](2, 1.5).String())
	assert.Equal(t, "a,b", New[sortable.String]("b", "a").String())
}

func TestContains(t *testing.T) {
	t.Parallel()

	s := New(ints(1, 2, 3)...)
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(4))

	s.Remove(2)
	assert.False(t, s.Contains(2))
}

func TestIndexOf(t *testing.T) {
	t.Parallel()

	s := New(ints(10, 20, 30)...)
	assert.Equal(t, optional.Some(1), s.IndexOf(20))
	assert.True(t, s.IndexOf(25).Empty())
}

func TestGetRange(t *testing.T) {
	t.Parallel()

	s := New(ints(1, 2, 3, 4, 5)...)

	tests := []struct {
		name       string
		start, end int
		expected   []sortable.Int
	}{
		{"inclusive span", 1, 3, ints(2, 3, 4)},
		{"single position", 2, 2, ints(3)},
		{"whole set", 0, 4, ints(1, 2, 3, 4, 5)},
		{"start after end is empty", 3, 1, ints()},
		{"end clamped to last element", 3, 100, ints(4, 5)},
		{"negative start clamped to zero", -2, 1, ints(1, 2)},
		{"entirely past the end", 7, 9, ints()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, s.GetRange(tt.start, tt.end))
		})
	}

	t.Run("empty set", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ints(), New[sortable.Int]().GetRange(0, 0))
	})
}

func TestGetBetween(t *testing.T) {
	t.Parallel()

	s := New(ints(1, 2, 3, 4, 5)...)

	tests := []struct {
		name         string
		lower, upper sortable.Int
		bounds       Bounds
		expected     []sortable.Int
	}{
		{"inclusive", 2, 4, Inclusive, ints(2, 3, 4)},
		{"exclusive", 2, 4, Exclusive, ints(3)},
		{"inverted bounds are empty", 5, 2, Inclusive, ints()},
		{"inverted bounds are empty exclusive", 5, 2, Exclusive, ints()},
		{"equal bounds inclusive", 3, 3, Inclusive, ints(3)},
		{"equal bounds exclusive", 3, 3, Exclusive, ints()},
		{"bounds outside the set", -10, 10, Inclusive, ints(1, 2, 3, 4, 5)},
		{"bounds between members", 0, 1, Exclusive, ints()},
		{"above the set", 6, 9, Inclusive, ints()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, s.GetBetween(tt.lower, tt.upper, tt.bounds))
		})
	}

	t.Run("non-member bounds on floats", func(t *testing.T) {
		t.Parallel()

		fs := New[sortable.Float64](0.5, 1.5, 2.5, 3.5)
		assert.Equal(t, []sortable.Float64{1.5, 2.5}, fs.GetBetween(1, 3, Exclusive))
		assert.Equal(t, []sortable.Float64{1.5, 2.5}, fs.GetBetween(1, 3, Inclusive))
	})
}

func TestBoundsString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "inclusive", Inclusive.String())
	assert.Equal(t, "exclusive", Exclusive.String())
	assert.Equal(t, "unknown", Bounds(9).String())
}

func TestAdd(t *testing.T) {
	t.Parallel()

	t.Run("inserts in ascending position", func(t *testing.T) {
		t.Parallel()

		s := New[sortable.Int]()
		for _, v := range ints(5, 1, 4, 2, 3) {
			assert.True(t, s.Add(v))
		}

		assert.Equal(t, ints(1, 2, 3, 4, 5), s.Entries())
		requireConsistent(t, s)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		once := New(ints(1, 3)...)
		once.Add(2)

		twice := New(ints(1, 3)...)
		assert.True(t, twice.Add(2))
		assert.False(t, twice.Add(2))

		assert.Equal(t, once.Entries(), twice.Entries())
		requireConsistent(t, twice)
	})

	t.Run("AddAll counts new elements", func(t *testing.T) {
		t.Parallel()

		s := New(ints(2)...)
		assert.Equal(t, 2, s.AddAll(ints(1, 2, 3, 3)...))
		assert.Equal(t, ints(1, 2, 3), s.Entries())
	})
}

func TestRemove(t *testing.T) {
	t.Parallel()

	t.Run("returns removed element", func(t *testing.T) {
		t.Parallel()

		s := New(ints(1, 2, 3)...)
		assert.Equal(t, optional.Some(sortable.Int(2)), s.Remove(2))
		assert.Equal(t, ints(1, 3), s.Entries())
		requireConsistent(t, s)
	})

	t.Run("returns None for non-member", func(t *testing.T) {
		t.Parallel()

		s := New(ints(1, 2, 3)...)
		assert.True(t, s.Remove(7).Empty())
		assert.Equal(t, ints(1, 2, 3), s.Entries())
	})

	t.Run("add then remove round-trips", func(t *testing.T) {
		t.Parallel()

		s := New(ints(1, 5, 9)...)
		before := s.Entries()

		s.Add(4)
		assert.Equal(t, optional.Some(sortable.Int(4)), s.Remove(4))
		assert.Equal(t, before, s.Entries())
		requireConsistent(t, s)
	})
}

func TestRemoveAt(t *testing.T) {
	t.Parallel()

	t.Run("removes by position", func(t *testing.T) {
		t.Parallel()

		s := New(ints(1, 2, 3)...)
		assert.Equal(t, optional.Some(sortable.Int(2)), s.RemoveAt(1))
		assert.Equal(t, ints(1, 3), s.Entries())
		requireConsistent(t, s)
	})

	t.Run("out of range leaves set untouched", func(t *testing.T) {
		t.Parallel()

		s := New(ints(1, 2, 3)...)
		assert.True(t, s.RemoveAt(3).Empty())
		assert.True(t, s.RemoveAt(-1).Empty())
		assert.Equal(t, ints(1, 2, 3), s.Entries())
	})
}

func TestRemoveBetween(t *testing.T) {
	t.Parallel()

	t.Run("inclusive", func(t *testing.T) {
		t.Parallel()

		s := New(ints(1, 2, 3, 4, 5)...)
		assert.Equal(t, ints(2, 3, 4), s.RemoveBetween(2, 4, Inclusive))
		assert.Equal(t, ints(1, 5), s.Entries())
		assert.False(t, s.Contains(3))
		requireConsistent(t, s)
	})

	t.Run("exclusive", func(t *testing.T) {
		t.Parallel()

		s := New(ints(1, 2, 3, 4, 5)...)
		assert.Equal(t, ints(3), s.RemoveBetween(2, 4, Exclusive))
		assert.Equal(t, ints(1, 2, 4, 5), s.Entries())
		requireConsistent(t, s)
	})

	t.Run("nothing qualifies", func(t *testing.T) {
		t.Parallel()

		s := New(ints(1, 2, 3)...)
		assert.Equal(t, ints(), s.RemoveBetween(5, 2, Inclusive))
		assert.Equal(t, ints(), s.RemoveBetween(10, 20, Inclusive))
		assert.Equal(t, ints(1, 2, 3), s.Entries())
	})

	t.Run("removes everything", func(t *testing.T) {
		t.Parallel()

		s := New(ints(1, 2, 3)...)
		assert.Equal(t, ints(1, 2, 3), s.RemoveBetween(0, 10, Inclusive))
		assert.Equal(t, 0, s.Len())
		requireConsistent(t, s)
	})
}

func TestClear(t *testing.T) {
	t.Parallel()

	s := New(ints(1, 2, 3)...)
	s.Clear()

	assert.Equal(t, 0, s.Len())

	for _, v := range ints(1, 2, 3) {
		assert.False(t, s.Contains(v))
	}

	s.Clear()
	assert.Equal(t, 0, s.Len())
	requireConsistent(t, s)

	s.Add(7)
	assert.Equal(t, ints(7), s.Entries())
}

func TestSetAlgebra(t *testing.T) {
	t.Parallel()

	a := New(ints(1, 2, 3, 4)...)
	b := New(ints(3, 4, 5)...)

	t.Run("union", func(t *testing.T) {
		t.Parallel()

		u := a.Union(b)
		assert.Equal(t, ints(1, 2, 3, 4, 5), u.Entries())
		requireConsistent(t, u)
	})

	t.Run("intersection", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ints(3, 4), a.Intersection(b).Entries())
	})

	t.Run("difference", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ints(1, 2), a.Difference(b).Entries())
	})

	t.Run("nil other", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, a.Entries(), a.Union(nil).Entries())
		assert.Equal(t, ints(), a.Intersection(nil).Entries())
		assert.Equal(t, a.Entries(), a.Difference(nil).Entries())
	})

	t.Run("results are independent", func(t *testing.T) {
		t.Parallel()

		c := New(ints(1)...)
		clone := c.Clone()
		clone.Add(2)

		assert.Equal(t, ints(1), c.Entries())
		assert.Equal(t, ints(1, 2), clone.Entries())
	})
}

// TestRandomOperations drives a set and a plain-slice model through the same
// random operations and checks they agree after every step.
func TestRandomOperations(t *testing.T) {
	t.Parallel()

	t.Run("int", func(t *testing.T) {
		t.Parallel()

		runRandomOperations(t, func(n int) sortable.Int {
			return sortable.Int(n)
		})
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		runRandomOperations(t, func(n int) sortable.String {
			return sortable.String(wordFor(n))
		})
	})

	t.Run("natural string", func(t *testing.T) {
		t.Parallel()

		runRandomOperations(t, func(n int) sortable.NaturalString {
			return sortable.NaturalString(wordFor(n))
		})
	})
}

// wordFor maps n to strings whose digit runs differ in width and value, so
// byte order and natural order disagree on them.
func wordFor(n int) string {
	switch n % 4 {
	case 0:
		return "f" + strconv.Itoa(n/4)
	case 1:
		return "f0" + strconv.Itoa(n/4)
	case 2:
		return "f" + strconv.Itoa(n/4) + "x"
	default:
		return "g" + strconv.Itoa(n)
	}
}

func runRandomOperations[T Element[T]](t *testing.T, elem func(n int) T) {
	t.Helper()

	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec

	s := New[T]()

	var model []T

	modelBetween := func(lower, upper T, bounds Bounds) []T {
		out := []T{}

		for _, v := range model {
			if bounds == Exclusive && lower.LessThan(v) && v.LessThan(upper) ||
				bounds == Inclusive && !v.LessThan(lower) && !upper.LessThan(v) {
				out = append(out, v)
			}
		}

		return out
	}

	for range 2000 {
		x := elem(rng.IntN(50))
		y := elem(rng.IntN(50))
		bounds := Bounds(rng.IntN(2))

		switch rng.IntN(6) {
		case 0, 1:
			added := s.Add(x)
			assert.Equal(t, !slices.Contains(model, x), added)

			if added {
				model = append(model, x)
				slices.SortFunc(model, sortable.Compare[T])
			}
		case 2:
			removed := s.Remove(x)
			idx := slices.Index(model, x)

			if idx >= 0 {
				assert.Equal(t, optional.Some(x), removed)

				model = slices.Delete(model, idx, idx+1)
			} else {
				assert.True(t, removed.Empty())
			}
		case 3:
			idx := rng.IntN(len(model) + 2)
			removed := s.RemoveAt(idx)

			if idx < len(model) {
				assert.Equal(t, optional.Some(model[idx]), removed)

				model = slices.Delete(model, idx, idx+1)
			} else {
				assert.True(t, removed.Empty())
			}
		case 4:
			expected := modelBetween(x, y, bounds)
			assert.Equal(t, expected, s.GetBetween(x, y, bounds))

			if rng.IntN(4) == 0 {
				assert.Equal(t, expected, s.RemoveBetween(x, y, bounds))

				model = slices.DeleteFunc(model, func(v T) bool {
					return slices.Contains(expected, v)
				})
			}
		case 5:
			if idx := slices.Index(model, x); idx >= 0 {
				assert.Equal(t, optional.Some(idx), s.IndexOf(x))
			} else {
				assert.True(t, s.IndexOf(x).Empty())
			}
		}

		require.Equal(t, len(model), s.Len())
		require.Equal(t, append([]T{}, model...), s.Entries())
		requireConsistent(t, s)
	}
}

func TestNaturalStringElements(t *testing.T) {
	t.Parallel()

	t.Run("remove takes out the named element", func(t *testing.T) {
		t.Parallel()

		s := New[sortable.NaturalString]("a1", "a2", "a3")

		assert.Equal(t, optional.Some[sortable.NaturalString]("a2"), s.Remove("a2"))
		assert.Equal(t, []sortable.NaturalString{"a1", "a3"}, s.Entries())
		assert.False(t, s.Contains("a2"))
		assert.True(t, s.Contains("a3"))
		requireConsistent(t, s)
	})

	t.Run("ranges honour the bounds", func(t *testing.T) {
		t.Parallel()

		s := New[sortable.NaturalString]("f10", "f1", "f3", "f2", "f4")

		assert.Equal(t, []sortable.NaturalString{"f1", "f2", "f3", "f4", "f10"}, s.Entries())
		assert.Equal(t, []sortable.NaturalString{"f2", "f3"}, s.GetBetween("f2", "f3", Inclusive))
		assert.Equal(t, []sortable.NaturalString{"f3", "f4"}, s.GetBetween("f2", "f10", Exclusive))
		assert.Equal(t, optional.Some(1), s.IndexOf("f2"))
	})

	t.Run("equivalent digit runs stay distinct", func(t *testing.T) {
		t.Parallel()

		s := New[sortable.NaturalString]("a1", "a01", "a001")

		assert.Equal(t, 3, s.Len())
		assert.Equal(t, []sortable.NaturalString{"a001", "a01", "a1"}, s.Entries())
		requireConsistent(t, s)
	})
}
