package insertsort

// Option configures InsertionSort via functional arguments.
type Option func(*Options)

// Options holds callbacks observed during sorting.
type Options struct {
	// OnInsert is called after each key is placed. key is the value,
	// pos its final slot in the sorted prefix and from its original
	// index; pos <= from always holds.
	OnInsert func(key, pos, from int)
}

// DefaultOptions returns Options with a no-op OnInsert hook.
func DefaultOptions() Options {
	return Options{
		OnInsert: func(int, int, int) {},
	}
}

// WithOnInsert registers a callback run after every placement.
// A nil fn is ignored.
func WithOnInsert(fn func(key, pos, from int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnInsert = fn
		}
	}
}
