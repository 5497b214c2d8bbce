// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package swimxml

import (
	"fmt"
	"io"
	"os"
)

// Serialize renders the document as tab-indented XML text with a
// declaration. Attributes keep the order in which they were set. The
// builder's own tree is not modified, so Serialize may be called again after
// further Add* calls.
func (b *Builder) Serialize() (string, error) {
	doc := b.doc.Copy()
	doc.IndentTabs()
	return doc.WriteToString()
}

// WriteTo writes the serialized document to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	text, err := b.Serialize()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, text)
	return int64(n), err
}

// Save writes the serialized document to path, creating or truncating it.
func (b *Builder) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if _, err := b.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
