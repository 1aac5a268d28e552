// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package chainfile persists chains as YAML snapshot files.
//
// A snapshot is a single YAML document:
//
//	version: 1
//	values:
//	  - a
//	  - b
//
// Writes are atomic and durable: the document goes to a pending file that is
// fsynced and renamed over the target.
package chainfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ManuGH/chain/internal/chain"
	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// FormatVersion is the snapshot layout version written by Write.
const FormatVersion = 1

var (
	// ErrEmpty is returned for a nil chain or a snapshot without values.
	ErrEmpty = errors.New("chain snapshot is empty")
	// ErrVersion is returned for snapshots with an unsupported version.
	ErrVersion = errors.New("unsupported chain snapshot version")
)

type document[T any] struct {
	Version int `yaml:"version"`
	Values  []T `yaml:"values"`
}

// Encode writes the snapshot document for root to w.
func Encode[T any](w io.Writer, root *chain.Node[T]) error {
	if root == nil {
		return ErrEmpty
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document[T]{Version: FormatVersion, Values: root.Values()}); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return enc.Close()
}

// Decode parses a snapshot document and rebuilds the chain it describes.
func Decode[T any](r io.Reader) (*chain.Node[T], error) {
	var doc document[T]
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("snapshot contains multiple documents or trailing content")
	}

	if doc.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, doc.Version)
	}
	if len(doc.Values) == 0 {
		return nil, ErrEmpty
	}

	return chain.FromValues(doc.Values[0], doc.Values[1:]...), nil
}

// Write atomically replaces path with a snapshot of the chain rooted at root.
func Write[T any](path string, root *chain.Node[T]) (err error) {
	if root == nil {
		return ErrEmpty
	}

	var buf bytes.Buffer
	if err := Encode(&buf, root); err != nil {
		return err
	}

	// renameio handles: temp file creation, fsync, atomic rename, cleanup on error
	pendingFile, err := renameio.NewPendingFile(filepath.Clean(path), renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending snapshot file: %w", err)
	}
	defer func() {
		if cerr := pendingFile.Cleanup(); cerr != nil && err == nil {
			err = fmt.Errorf("cleanup pending snapshot file: %w", cerr)
		}
	}()

	if _, err := pendingFile.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write snapshot data: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace snapshot file: %w", err)
	}

	return nil
}

// Read loads the chain stored in the snapshot at path.
func Read[T any](path string) (*chain.Node[T], error) {
	// #nosec G304 -- snapshot paths are provided by the operator via CLI/ENV
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	root, err := Decode[T](f)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	return root, nil
}
