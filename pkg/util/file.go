package util

import (
	"io"
	"os"
)

// WriteNoCloser wraps a Writer with a no-op Close,
// for writers like os.Stdout whose lifetime is not ours to manage.
type WriteNoCloser struct{ io.Writer }

func (w WriteNoCloser) Close() error { return nil }

// OpenOutputFile opens and returns a file for output.
// If filename is "", it returns a writer that discards everything.
// If filename is "-"/"!", it returns stdout/stderr; its Close() does nothing.
func OpenOutputFile(filename string) (io.WriteCloser, error) {
	switch filename {
	case "":
		return WriteNoCloser{io.Discard}, nil
	case "-":
		return WriteNoCloser{os.Stdout}, nil
	case "!":
		return WriteNoCloser{os.Stderr}, nil
	default:
		return os.Create(filename)
	}
}

// Close tries to close a closer, ignoring any error.
// For use with defer.
func Close(c io.Closer) { _ = c.Close() }
