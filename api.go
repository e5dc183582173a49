package validkit

// Validate checks data against s and returns the validated value.
//
// By default the first problem aborts the call and the returned error is an
// Issues holding exactly that one issue. With Opt{CollectErrors: true} every
// problem is gathered: the best-effort value (raw input substituted wherever a
// check failed) is returned together with all issues, and the error is nil
// only when there were none.
func Validate(data any, s Schema, opts ...Opt) (any, error) {
	o := mergeOpts(opts)
	out, iss, err := run(data, s, o)
	if err != nil {
		return nil, err
	}
	if len(iss) > 0 {
		return out, iss
	}
	return out, nil
}

// Collect validates in collect mode and returns the best-effort value with
// every issue found.
func Collect(data any, s Schema, opts ...Opt) Result {
	o := mergeOpts(opts)
	o.CollectErrors = true
	out, iss, _ := run(data, s, o)
	if iss == nil {
		iss = Issues{}
	}
	return Result{Value: out, Issues: iss}
}

// MustValidate is like Validate but panics on error.
func MustValidate(data any, s Schema, opts ...Opt) any {
	out, err := Validate(data, s, opts...)
	if err != nil {
		panic(err)
	}
	return out
}

// Is reports whether data passes s.
func Is(data any, s Schema, opts ...Opt) bool {
	_, err := Validate(data, s, opts...)
	return err == nil
}

func run(data any, s Schema, o Opt) (any, Issues, error) {
	data = applyMigration(data, o.Migrate, o.Logger)
	w := &walker{
		root:    data,
		partial: o.Partial,
		collect: o.CollectErrors,
		log:     o.Logger,
	}
	out, err := w.walk(data, s, Root, o.Base)
	if err != nil {
		return nil, nil, err
	}
	if out == omitted {
		out = nil
	}
	return out, w.issues, nil
}
