package fileio

import (
	"io"
	"os"
)

// Stdio is the file name that stands for standard input or output.
const Stdio = "-"

// OpenReadFile opens file for reading, or returns stdin when file is "-".
// Closing the stdin handle does nothing.
func OpenReadFile(file string, stdin io.Reader) (io.ReadCloser, error) {
	if file == Stdio {
		return io.NopCloser(stdin), nil
	}

	return os.Open(file)
}

// OpenWriteFile creates or truncates file, or returns stdout when file is "-".
// Closing the stdout handle does nothing.
func OpenWriteFile(file string, stdout io.Writer) (io.WriteCloser, error) {
	if file == Stdio {
		return nopWriteCloser{stdout}, nil
	}

	return os.OpenFile(file, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
