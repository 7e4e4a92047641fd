package qoi

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
)

// ReadField seeks src to *cursor, reads exactly size bytes and advances the
// cursor by size. Any seek or read failure, including a short read, is
// returned as an *IOError and leaves the cursor untouched.
func ReadField(cursor *int64, src io.ReadSeeker, size int) ([]byte, error) {
	return readField(cursor, src, size, "")
}

func readField(cursor *int64, src io.ReadSeeker, size int, field string) ([]byte, error) {
	if _, err := src.Seek(*cursor, io.SeekStart); err != nil {
		return nil, &IOError{Field: field, Offset: *cursor, Size: size, Err: err}
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(src, buf); err != nil {
		return nil, &IOError{Field: field, Offset: *cursor, Size: size, Err: err}
	}
	*cursor += int64(size)
	return buf, nil
}

// DecodeHeader reads the QOI header from the start of src, one field at a
// time in declaration order. Decoding stops at the first failure: a bad
// magic is reported before width is read, and a bad channels byte before
// colorspace is read.
func DecodeHeader(src io.ReadSeeker) (*Header, error) {
	var cursor int64

	magic, err := readField(&cursor, src, magicSize, "magic")
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(magic, magicBytes[:]) {
		return nil, ErrInvalidMagic
	}

	width, err := readField(&cursor, src, dimensionSize, "width")
	if err != nil {
		return nil, err
	}
	height, err := readField(&cursor, src, dimensionSize, "height")
	if err != nil {
		return nil, err
	}

	ch, err := readField(&cursor, src, channelsSize, "channels")
	if err != nil {
		return nil, err
	}
	channels := Channels(ch[0])
	if !channels.Valid() {
		return nil, &UnknownChannelFormatError{Value: ch[0]}
	}

	cs, err := readField(&cursor, src, colorspaceSize, "colorspace")
	if err != nil {
		return nil, err
	}
	colorspace := Colorspace(cs[0])
	if !colorspace.Valid() {
		return nil, &UnknownColorspaceError{Value: cs[0]}
	}

	return &Header{
		Width:      beUint32(width),
		Height:     beUint32(height),
		Channels:   channels,
		Colorspace: colorspace,
	}, nil
}

// DecodeConfig returns the image dimensions and color model of a QOI stream
// without touching the pixel data. At most HeaderSize bytes are consumed
// from r.
func DecodeConfig(r io.Reader) (image.Config, error) {
	buf := make([]byte, HeaderSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return image.Config{}, &IOError{Offset: int64(n), Size: HeaderSize - n, Err: err}
	}

	// A short buffer fails inside DecodeHeader at the field that overruns it.
	h, err := DecodeHeader(bytes.NewReader(buf[:n]))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		Width:      int(h.Width),
		Height:     int(h.Height),
		ColorModel: color.NRGBAModel,
	}, nil
}
