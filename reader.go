package neotags

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const maxLine = 10 * 1024 * 1024

// DefaultMaxBuffer is the default cap for the source buffer size.
const DefaultMaxBuffer = 256 << 20

// ExpandSource resolves a tag-source identifier to file paths.
// Plain paths are returned as-is; glob patterns (including "**") are
// expanded and sorted. A pattern without matches is an error.
func ExpandSource(source string) ([]string, error) {
	if !strings.ContainsAny(source, "*?[{") {
		return []string{source}, nil
	}

	paths, err := doublestar.FilepathGlob(source, doublestar.WithFilesOnly())
	if err != nil {
		return nil, newError(KindIO, "expand tag source", fmt.Errorf("%q: %w", source, err))
	}

	if len(paths) == 0 {
		return nil, newError(KindIO, "expand tag source", fmt.Errorf("%q: no tag files match", source))
	}

	slices.Sort(paths)

	return paths, nil
}

// ReadRecords reads every line of every tag file named by source.
func ReadRecords(source string) ([]string, error) {
	paths, err := ExpandSource(source)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, p := range paths {
		recs, err := readFile(p)
		if err != nil {
			return nil, err
		}

		out = append(out, recs...)
	}

	return out, nil
}

func readFile(path string) ([]string, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, newError(KindIO, "stat tag file", err)
	}

	if !st.Mode().IsRegular() {
		return nil, newError(KindIO, "open tag file", fmt.Errorf("invalid filetype %q", path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, newError(KindIO, "open tag file", err)
	}
	defer f.Close()

	r, closeFn, err := decompressor(path, f)
	if err != nil {
		return nil, newError(KindIO, "open tag file", fmt.Errorf("%q: %w", path, err))
	}
	defer closeFn()

	recs, err := ReadRecordsFrom(r)
	if err != nil {
		return nil, newError(KindIO, "read tag file", fmt.Errorf("%q: %w", path, err))
	}

	return recs, nil
}

// decompressor wraps r according to the file extension.
func decompressor(path string, r io.Reader) (io.Reader, func(), error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}

		return zr, func() { _ = zr.Close() }, nil

	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, nil, err
		}

		return zr, zr.Close, nil

	default:
		return r, func() {}, nil
	}
}

// ReadRecordsFrom splits r into lines. Carriage returns are dropped and
// empty lines are kept (the pipeline skips them).
func ReadRecordsFrom(r io.Reader) ([]string, error) {
	out := make([]string, 0, 1024)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		line := sc.Text()
		if strings.IndexByte(line, '\r') >= 0 {
			line = strings.ReplaceAll(line, "\r", "")
		}

		out = append(out, line)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// ReadBuffer reads exactly n bytes from r.
// n above limit is an allocation failure; a short read is an I/O failure.
// limit <= 0 falls back to DefaultMaxBuffer.
func ReadBuffer(r io.Reader, n, limit int64) (string, error) {
	if n < 0 {
		return "", newError(KindInvalidInt, "read buffer", fmt.Errorf("negative length %d", n))
	}

	if limit <= 0 {
		limit = DefaultMaxBuffer
	}

	if n > limit {
		return "", newError(KindAlloc, "read buffer", fmt.Errorf("%d bytes exceeds limit of %d", n, limit))
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			err = fmt.Errorf("expected %d bytes: %w", n, io.ErrUnexpectedEOF)
		}

		return "", newError(KindIO, "read buffer", err)
	}

	return string(buf), nil
}
