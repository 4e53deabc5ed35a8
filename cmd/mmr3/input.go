package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/mmr3/internal/fs"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// maxLineBytes bounds a single key read from line-oriented input.
const maxLineBytes = 16 << 20

// openInput opens path for reading. "-" is stdin. Files ending in .zst or
// .lz4 are decompressed transparently.
func openInput(fsys fs.FileSystem, path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}

	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}

	r, err := decompress(path, f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

type multiCloser struct {
	io.Reader
	closers []func() error
}

func (m *multiCloser) Close() error {
	var errs []error
	for _, c := range m.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func decompress(path string, f io.ReadCloser) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		return &multiCloser{
			Reader:  zr,
			closers: []func() error{func() error { zr.Close(); return nil }, f.Close},
		}, nil
	case strings.HasSuffix(path, ".lz4"):
		return &multiCloser{Reader: lz4.NewReader(f), closers: []func() error{f.Close}}, nil
	default:
		return f, nil
	}
}

// writeOutput runs write against stdout, or atomically replaces path when
// it is set and not "-".
func writeOutput(e *env, path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(e.stdout)
	}
	return fs.WriteAtomic(e.fs, path, write)
}

// readLines returns every line of r without "\n" or "\r\n" terminators.
func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

// readAllLines concatenates the lines of every path in order.
func readAllLines(fsys fs.FileSystem, paths []string, stdin io.Reader) ([]string, error) {
	var all []string
	for _, p := range paths {
		r, err := openInput(fsys, p, stdin)
		if err != nil {
			return nil, err
		}
		lines, err := readLines(r)
		closeErr := r.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("%s: %w", p, closeErr)
		}
		all = append(all, lines...)
	}
	return all, nil
}
