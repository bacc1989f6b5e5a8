package configs

import (
	"errors"
	"iter"
)

// Lookup decodes the first value at path. ok is false when no file defines it.
func Lookup[T any](loader Loader, path string) (ret T, ok bool, err error) {
	err = loader.AssignFirst(path, &ret)
	if errors.Is(err, ErrValueNotFound) {
		return ret, false, nil
	}
	if err != nil {
		return ret, false, err
	}
	return ret, true, nil
}

// All decodes the value at path from every file that defines it, in lookup order.
func All[T any](loader Loader, path string) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for value, err := range loader.IterCueValues(path) {
			var v T
			if err == nil {
				err = value.Decode(&v)
			}
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}
