package sortedset

import (
	"context"
	"iter"
	"log/slog"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-collections/optional"
)

const defaultObservedName = "default"

// ObserveOptions configures NewObserved.
type ObserveOptions struct {
	// Name labels the set's metrics and log lines. Keep the number of
	// distinct names small; it becomes a Prometheus label value.
	Name string

	// Logger receives a Debug record for every mutation. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// NewObserved wraps a set so that every mutation is counted in Prometheus
// and logged at Debug level. Reads pass straight through.
//
// The wrapper adds no locking of its own. To share an observed set between
// goroutines, wrap the result with NewThreadSafe.
func NewObserved[T Element[T]](s SortedSet[T], opts ObserveOptions) SortedSet[T] {
	if s == nil {
		return nil
	}

	if opts.Name == "" {
		opts.Name = defaultObservedName
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	obs := &observed[T]{
		internal: s,
		name:     opts.Name,
		logger:   opts.Logger.With("set", opts.Name),
	}

	setSize.WithLabelValues(obs.name).Set(float64(s.Len()))

	return obs
}

type observed[T Element[T]] struct {
	internal SortedSet[T]
	name     string
	logger   *slog.Logger
}

// record updates the metrics and logs one mutation.
func (o *observed[T]) record(op string, added, removed int, args ...any) {
	size := o.internal.Len()

	operationsTotal.WithLabelValues(o.name, op).Inc()
	elementsAdded.WithLabelValues(o.name).Add(float64(added))
	elementsRemoved.WithLabelValues(o.name).Add(float64(removed))
	setSize.WithLabelValues(o.name).Set(float64(size))

	args = append(args, "added", added, "removed", removed, "size", size)
	o.logger.Debug("sorted set "+op, args...)
}

func (o *observed[T]) Len() int {
	return o.internal.Len()
}

func (o *observed[T]) At(index int) optional.Value[T] {
	return o.internal.At(index)
}

func (o *observed[T]) Get(index int) optional.Value[T] {
	return o.internal.Get(index)
}

func (o *observed[T]) GetRange(start, end int) []T {
	return o.internal.GetRange(start, end)
}

func (o *observed[T]) Contains(element T) bool {
	return o.internal.Contains(element)
}

func (o *observed[T]) IndexOf(element T) optional.Value[int] {
	return o.internal.IndexOf(element)
}

func (o *observed[T]) First() optional.Value[T] {
	return o.internal.First()
}

func (o *observed[T]) Last() optional.Value[T] {
	return o.internal.Last()
}

func (o *observed[T]) Entries() []T {
	return o.internal.Entries()
}

func (o *observed[T]) String() string {
	return o.internal.String()
}

func (o *observed[T]) MarshalJSON() ([]byte, error) {
	return o.internal.MarshalJSON()
}

func (o *observed[T]) MarshalYAML() (any, error) {
	return o.internal.MarshalYAML()
}

func (o *observed[T]) Seq() iter.Seq2[int, T] {
	return o.internal.Seq()
}

func (o *observed[T]) GetBetween(lower, upper T, bounds Bounds) []T {
	return o.internal.GetBetween(lower, upper, bounds)
}

func (o *observed[T]) ForEach(callback func(element T, index int)) error {
	return o.internal.ForEach(callback)
}

func (o *observed[T]) ForEachAsync(ctx context.Context, callback func(element T, index int)) (pond.Task, error) {
	return o.internal.ForEachAsync(ctx, callback)
}

func (o *observed[T]) SeqContext(ctx context.Context) iter.Seq2[int, T] {
	return o.internal.SeqContext(ctx)
}

func (o *observed[T]) Add(element T) bool {
	ok := o.internal.Add(element)

	o.record("add", boolToInt(ok), 0, "element", element)

	return ok
}

func (o *observed[T]) AddAll(elements ...T) int {
	added := o.internal.AddAll(elements...)

	o.record("add_all", added, 0, "count", len(elements))

	return added
}

func (o *observed[T]) Remove(element T) optional.Value[T] {
	removed := o.internal.Remove(element)

	o.record("remove", 0, removed.Size(), "element", element)

	return removed
}

func (o *observed[T]) RemoveAt(index int) optional.Value[T] {
	removed := o.internal.RemoveAt(index)

	o.record("remove_at", 0, removed.Size(), "index", index)

	return removed
}

func (o *observed[T]) RemoveBetween(lower, upper T, bounds Bounds) []T {
	removed := o.internal.RemoveBetween(lower, upper, bounds)

	o.record("remove_between", 0, len(removed),
		"lower", lower, "upper", upper, "bounds", bounds.String())

	return removed
}

func (o *observed[T]) Clear() {
	before := o.internal.Len()

	o.internal.Clear()

	o.record("clear", 0, before)
}

// Clone returns an unobserved copy. Derived sets never report under the
// parent's name; wrap them with NewObserved to track them.
func (o *observed[T]) Clone() SortedSet[T] {
	return o.internal.Clone()
}

// Union returns an unobserved set, like Clone.
func (o *observed[T]) Union(other SortedSet[T]) SortedSet[T] {
	return o.internal.Union(other)
}

// Intersection returns an unobserved set, like Clone.
func (o *observed[T]) Intersection(other SortedSet[T]) SortedSet[T] {
	return o.internal.Intersection(other)
}

// Difference returns an unobserved set, like Clone.
func (o *observed[T]) Difference(other SortedSet[T]) SortedSet[T] {
	return o.internal.Difference(other)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
