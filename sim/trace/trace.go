package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"
)

// Encode writes r to w as indented JSON.
func Encode(w io.Writer, r *Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding trace: %w", err)
	}
	return nil
}

// Decode reads one JSON record from rd.
func Decode(rd io.Reader) (*Record, error) {
	var r Record
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("decoding trace: %w", err)
	}
	return &r, nil
}

// Write stores r at path. A ".zst" suffix compresses with zstd and ".gz" with
// gzip; anything else is written as plain JSON.
func Write(path string, r *Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing trace file: %w", closeErr)
		}
	}()

	var w io.WriteCloser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst":
		w, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return fmt.Errorf("creating zstd writer: %w", err)
		}
	case ".gz":
		w = gzip.NewWriter(f)
	default:
		if err := Encode(f, r); err != nil {
			return err
		}
		logrus.Debugf("wrote trace to %s", path)
		return nil
	}

	if err := Encode(w, r); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("flushing compressed trace: %w", err)
	}
	logrus.Debugf("wrote compressed trace to %s", path)
	return nil
}

// Read loads a record written by Write, decompressing by file extension.
func Read(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("creating zstd reader: %w", err)
		}
		defer dec.Close()
		return Decode(dec)
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		defer gz.Close()
		return Decode(gz)
	}
	return Decode(f)
}
