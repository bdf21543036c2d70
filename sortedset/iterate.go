package sortedset

import (
	"context"
	"iter"
	"sync"

	"github.com/alitto/pond/v2"
)

const defaultAsyncWorkers = 4

// asyncPool runs ForEachAsync walks. It is shared by every set and created
// on first use.
var asyncPool = sync.OnceValue(func() pond.Pool { //nolint:gochecknoglobals
	return pond.NewPool(defaultAsyncWorkers)
})

func seqOf[T any](entries []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, elem := range entries {
			if !yield(i, elem) {
				return
			}
		}
	}
}

func seqContextOf[T any](ctx context.Context, entries []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, elem := range entries {
			if ctx.Err() != nil {
				return
			}

			if !yield(i, elem) {
				return
			}
		}
	}
}

// forEachAsync walks entries on the shared pool. The nil-callback check
// happens before anything is submitted.
func forEachAsync[T any](
	ctx context.Context, entries []T, callback func(element T, index int),
) (pond.Task, error) { //nolint:ireturn
	if callback == nil {
		return nil, ErrNilCallback
	}

	task := asyncPool().SubmitErr(func() error {
		for i, elem := range entries {
			if err := ctx.Err(); err != nil {
				return err
			}

			callback(elem, i)
		}

		return nil
	})

	return task, nil
}
