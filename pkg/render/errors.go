package render

import "fmt"

// UnavailableError reports that the Graphviz executable could not be located
// or failed its version query. Not recoverable without environment changes.
type UnavailableError struct {
	// Command is the version-query command line that was attempted.
	Command string
	Err     error
}

// Error returns the attempted command along with the execution failure.
func (e *UnavailableError) Error() string {
	return fmt.Sprintf("graphviz unavailable (tried %q): %v", e.Command, e.Err)
}

// Unwrap returns the underlying execution error.
func (e *UnavailableError) Unwrap() error { return e.Err }

// RenderError reports that the Graphviz process ran but exited with an error
// while producing output.
type RenderError struct {
	// Output is the diagnostic text Graphviz wrote to stderr.
	Output string
	Err    error
}

// Error returns the process failure along with Graphviz's diagnostics.
func (e *RenderError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("graphviz render failed: %v", e.Err)
	}
	return fmt.Sprintf("graphviz render failed: %v: %s", e.Err, e.Output)
}

// Unwrap returns the underlying process error.
func (e *RenderError) Unwrap() error { return e.Err }

// WriteError reports that persisting rendered bytes to disk failed.
type WriteError struct {
	Path string
	Err  error
}

// Error returns the target path along with the I/O failure.
func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *WriteError) Unwrap() error { return e.Err }
