package vdjannotate

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// Open opens path for reading, transparently handling ~ expansion, gs://
// URLs, and compressed inputs. A nil client restricts paths to the local
// filesystem. The caller must Close the result.
func Open(path string, client *storage.Client) (io.ReadCloser, error) {
	path = ExpandHome(path)

	var rc io.ReadCloser
	var err error
	if strings.HasPrefix(path, "gs://") {
		rc, err = openGoogleStorage(path, client)
	} else {
		rc, err = os.Open(path)
	}
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	decompressed, err := MaybeDecompress(rc)
	if err != nil {
		rc.Close()
		return nil, pfx.Err(fmt.Errorf("%s: %v", path, err))
	}

	return &wrappedReadCloser{Reader: decompressed, underlying: rc}, nil
}

func openGoogleStorage(path string, client *storage.Client) (io.ReadCloser, error) {
	if client == nil {
		return nil, fmt.Errorf("no storage client is configured for google storage paths")
	}

	// Split gs://bucket/path/to/object into its bucket and object parts
	pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(pathParts) != 2 {
		return nil, fmt.Errorf("expected a google storage path with 2 parts, but got %d: %v", len(pathParts), pathParts)
	}

	return client.Bucket(pathParts[0]).Object(pathParts[1]).NewReader(context.Background())
}

// wrappedReadCloser reads from the (possibly decompressing) reader while
// closing the underlying file or object handle.
type wrappedReadCloser struct {
	io.Reader
	underlying io.Closer
}

func (w *wrappedReadCloser) Close() error {
	return w.underlying.Close()
}
