package field

// Option configures a Field at construction time, the same functional-
// options shape as core.GraphOption / builder.BuilderOption in the
// teacher's graph packages.
type Option func(*Field)

// WithBacktracking enables backtracking on propagation failure: Step will
// unwind committed decisions (see revert) and try an alternative instead
// of returning false immediately. Off by default, matching historical
// behavior.
func WithBacktracking() Option {
	return func(f *Field) { f.allowBacktracking = true }
}
