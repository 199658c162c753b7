package sweep

// Failure is a per-file error that did not stop the sweep.
type Failure struct {
	Path string
	Err  error
}

func (f Failure) Error() string {
	return f.Path + ": " + f.Err.Error()
}

func (f Failure) Unwrap() error { return f.Err }

// Result summarises one sweep.
type Result struct {
	Matched  []Candidate
	Acted    []string // deleted paths, or archive destinations
	Skipped  []string
	Failures []Failure
}

func (r *Result) fail(path string, err error) {
	r.Failures = append(r.Failures, Failure{Path: path, Err: err})
}
