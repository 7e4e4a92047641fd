package qoi

import (
	"fmt"
	"os"
)

// RenderReport formats a decoded header for humans.
func RenderReport(name string, width, height uint32, channels, colorspace string) string {
	return fmt.Sprintf("File %s:\n\tSize: %dx%d\n\tChannels: %s\n\tColorspace: %s\n",
		name, width, height, channels, colorspace)
}

// DecodeFile opens path and decodes its header. Open errors are returned
// unwrapped so callers can print them verbatim.
func DecodeFile(path string) (*Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return DecodeHeader(f)
}

// Describe decodes the header of the file at path and renders the report.
func Describe(path string) (string, error) {
	h, err := DecodeFile(path)
	if err != nil {
		return "", err
	}
	return RenderReport(path, h.Width, h.Height, h.Channels.String(), h.Colorspace.String()), nil
}
