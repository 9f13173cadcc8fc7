package vdjannotate

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/csimplestring/go-csv/detector"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

// DetermineDelimiter returns the single most likely rune that would delimit
// the values in the reader, assuming a CSV-like file. Vendor V(D)J tables are
// usually comma-delimited, but tab-delimited exports appear in the wild.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}

type Compression byte

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZip
	CompressionXZ
	CompressionZlib
	CompressionBZip2
)

var compressionSigs = map[Compression][]byte{
	CompressionGzip:  {0x1f, 0x8b, 0x08},
	CompressionZip:   {0x50, 0x4b, 0x03, 0x04},
	CompressionXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	CompressionZlib:  {0x1f, 0x9d},
	CompressionBZip2: {0x42, 0x5a, 0x68},
}

// DetectCompression matches the leading bytes of a stream against known
// compression signatures. Anything unrecognized is treated as uncompressed.
func DetectCompression(leading []byte) Compression {
	for c, sig := range compressionSigs {
		if bytes.HasPrefix(leading, sig) {
			return c
		}
	}

	return CompressionNone
}

// MaybeDecompress wraps r with the appropriate decompressor if its leading
// bytes carry a known compression signature. Unlike seek-based sniffing, this
// works on non-seekable streams such as Google Storage readers.
func MaybeDecompress(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	leading, err := br.Peek(6)
	if err != nil && err != io.EOF {
		return nil, err
	}

	switch DetectCompression(leading) {
	case CompressionGzip:
		return gzip.NewReader(br)
	case CompressionZip:
		return zipstream.NewReader(br), nil
	case CompressionXZ:
		return xz.NewReader(br, 0)
	case CompressionZlib:
		return zlib.NewReader(br)
	case CompressionBZip2:
		return bzip2.NewReader(br), nil
	}

	return br, nil
}
