// Package qoi reads the fixed 14-byte header of QOI ("Quite OK Image") files.
//
// Layout, all integers big-endian:
//
//	offset 0   4 bytes  magic "qoif"
//	offset 4   4 bytes  width
//	offset 8   4 bytes  height
//	offset 12  1 byte   channels (3 = RGB, 4 = RGBA)
//	offset 13  1 byte   colorspace (0 = sRGB with linear alpha, 1 = all linear)
//
// The pixel stream that follows the header is not decoded.
package qoi
