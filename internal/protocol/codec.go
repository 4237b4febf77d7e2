package protocol

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec handles trace encoding/decoding
type Codec struct {
	enc *msgpack.Encoder
	dec *msgpack.Decoder
}

// NewCodec creates a codec for the given read/writer
func NewCodec(rw io.ReadWriter) *Codec {
	return &Codec{
		enc: msgpack.NewEncoder(rw),
		dec: msgpack.NewDecoder(rw),
	}
}

// NewEncoder creates an encoder-only codec
func NewEncoder(w io.Writer) *Codec {
	return &Codec{
		enc: msgpack.NewEncoder(w),
	}
}

// NewDecoder creates a decoder-only codec
func NewDecoder(r io.Reader) *Codec {
	return &Codec{
		dec: msgpack.NewDecoder(r),
	}
}

// EncodeHeader writes the trace header
func (c *Codec) EncodeHeader(h *TraceHeader) error {
	return c.enc.Encode(h)
}

// Encode writes a frame
func (c *Codec) Encode(f *Frame) error {
	return c.enc.Encode(f)
}

// DecodeHeader reads the trace header
func (c *Codec) DecodeHeader() (*TraceHeader, error) {
	var h TraceHeader
	if err := c.dec.Decode(&h); err != nil {
		return nil, err
	}
	return &h, nil
}

// Decode reads a frame
func (c *Codec) Decode() (*Frame, error) {
	var f Frame
	if err := c.dec.Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}
