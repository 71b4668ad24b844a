// Package options implements generic functional options.
//
// A package exposes options over a pointer to its configuration struct:
//
//	type DecoderOption = options.Option[*decoderConfig]
//
//	func WithMaxLength(n int) DecoderOption {
//	    return options.New(func(c *decoderConfig) error {
//	        if err := options.CheckRange("max length", n, 1, math.MaxInt); err != nil {
//	            return err
//	        }
//	        c.maxLength = n
//	        return nil
//	    })
//	}
package options

import "fmt"

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a function to the Option interface.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New wraps fn as an Option.
func New[T any](fn func(T) error) Option[T] {
	return Func[T](fn)
}

// NoError wraps an infallible fn as an Option.
func NoError[T any](fn func(T)) Option[T] {
	return Func[T](func(target T) error {
		fn(target)
		return nil
	})
}

// Apply applies opts to target in order and stops at the first error.
//
// Nil options are skipped, so callers can pass conditionally built slices.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// CheckRange returns an error naming the option when v is outside [lo, hi].
func CheckRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s %d out of range [%d, %d]", name, v, lo, hi)
	}

	return nil
}
