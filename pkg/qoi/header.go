package qoi

import "fmt"

const (
	// Magic is the signature every QOI file starts with.
	Magic = "qoif"

	// HeaderSize is the fixed size of the QOI header in bytes.
	HeaderSize = 14

	magicSize      = 4
	dimensionSize  = 4
	channelsSize   = 1
	colorspaceSize = 1
)

var magicBytes = [magicSize]byte{'q', 'o', 'i', 'f'}

// Channels is the channel layout byte at offset 12.
type Channels uint8

const (
	ChannelsRGB  Channels = 3
	ChannelsRGBA Channels = 4
)

// Valid reports whether c is one of the two layouts QOI defines.
func (c Channels) Valid() bool {
	return c == ChannelsRGB || c == ChannelsRGBA
}

func (c Channels) String() string {
	switch c {
	case ChannelsRGB:
		return "RGB"
	case ChannelsRGBA:
		return "RGBA"
	default:
		return fmt.Sprintf("channels(%d)", uint8(c))
	}
}

// Colorspace is the colorspace tag at offset 13. It is informative only.
type Colorspace uint8

const (
	ColorspaceSRGB   Colorspace = 0
	ColorspaceLinear Colorspace = 1
)

func (c Colorspace) Valid() bool {
	return c == ColorspaceSRGB || c == ColorspaceLinear
}

func (c Colorspace) String() string {
	switch c {
	case ColorspaceSRGB:
		return "sRGB with linear alpha"
	case ColorspaceLinear:
		return "all channels linear"
	default:
		return fmt.Sprintf("colorspace(%d)", uint8(c))
	}
}

// Header is the decoded 14-byte QOI header. The magic is not kept: a Header
// only exists once the magic has been validated.
type Header struct {
	Width      uint32
	Height     uint32
	Channels   Channels
	Colorspace Colorspace
}

// Pixels returns width*height. Both factors fit in 32 bits so the product
// cannot overflow uint64.
func (h *Header) Pixels() uint64 {
	return uint64(h.Width) * uint64(h.Height)
}

// beUint32 composes four bytes MSB-first.
func beUint32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
