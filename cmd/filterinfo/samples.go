package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cwbudde/algo-denoise/dsp/core"
)

// openInput returns stdin for no argument or "-", otherwise the named file.
func openInput(stdin io.Reader, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(stdin), nil
	}

	return os.Open(args[0])
}

// sampleReader yields samples one at a time.
type sampleReader struct {
	binary bool
	br     *bufio.Reader
	sc     *bufio.Scanner
}

func newSampleReader(r io.Reader, binary bool) *sampleReader {
	if binary {
		return &sampleReader{binary: true, br: bufio.NewReader(r)}
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &sampleReader{sc: sc}
}

// Next returns the next sample, or io.EOF at the end of input.
func (r *sampleReader) Next() (core.Sample, error) {
	if r.binary {
		return r.br.ReadByte()
	}

	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return 0, err
		}

		return 0, io.EOF
	}

	v, err := strconv.ParseUint(r.sc.Text(), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid sample %q: %w", r.sc.Text(), err)
	}

	return core.Sample(v), nil
}

// readAll collects every remaining sample.
func (r *sampleReader) readAll() ([]core.Sample, error) {
	var out []core.Sample

	for {
		v, err := r.Next()
		if err == io.EOF {
			return out, nil
		}

		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}
}

// writeSample writes one sample as a raw byte or a decimal line.
func writeSample(w *bufio.Writer, v core.Sample, binary bool) error {
	if binary {
		return w.WriteByte(v)
	}

	_, err := w.WriteString(strconv.Itoa(int(v)) + "\n")

	return err
}
