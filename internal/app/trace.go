package app

import (
	"bufio"
	"os"

	"github.com/pkg/errors"

	"github.com/diegok/pongsim/internal/protocol"
)

// traceWriter appends msgpack frames to a file
type traceWriter struct {
	file  *os.File
	buf   *bufio.Writer
	codec *protocol.Codec
}

// openTrace creates the trace file and writes its header
func openTrace(path string, header *protocol.TraceHeader) (*traceWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create trace file")
	}

	buf := bufio.NewWriter(f)
	tw := &traceWriter{file: f, buf: buf, codec: protocol.NewEncoder(buf)}
	if err := tw.codec.EncodeHeader(header); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "write trace header")
	}
	return tw, nil
}

func (tw *traceWriter) Write(frame *protocol.Frame) error {
	if err := tw.codec.Encode(frame); err != nil {
		return errors.Wrapf(err, "write trace frame %d", frame.Tick)
	}
	return nil
}

func (tw *traceWriter) Close() error {
	if err := tw.buf.Flush(); err != nil {
		tw.file.Close()
		return errors.Wrap(err, "flush trace")
	}
	return tw.file.Close()
}
