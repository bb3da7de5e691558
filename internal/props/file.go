// SPDX-License-Identifier: MPL-2.0

package props

import (
	"fmt"
	"io"
	"os"

	"github.com/magiconair/properties"
)

// fileEncoding is the encoding of .properties files. Bytes map one to one to
// runes and non-Latin-1 characters are written as \uXXXX escapes.
const fileEncoding = properties.ISO_8859_1

// Parse decodes .properties content: key=value, key:value or key value
// lines, # and ! comments, backslash line continuation and escapes. ${...}
// references are kept verbatim.
func Parse(data []byte) (Properties, error) {
	loader := &properties.Loader{
		Encoding:         fileEncoding,
		DisableExpansion: true,
	}

	p, err := loader.LoadBytes(data)
	if err != nil {
		return nil, err
	}
	return Properties(p.Map()), nil
}

// Read decodes .properties content from r.
func Read(r io.Reader) (Properties, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// LoadFile opens and decodes the .properties file at path. The file is
// closed before LoadFile returns, including on parse failure.
func LoadFile(path string) (Properties, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open properties file: %w", err)
	}
	defer f.Close()

	p, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse properties: %w", err)
	}
	return p, nil
}

// Write encodes p to w in .properties format with keys in lexical order.
func Write(w io.Writer, p Properties) error {
	out := properties.NewProperties()
	out.DisableExpansion = true
	for _, key := range p.Keys() {
		if _, _, err := out.Set(key, p[key]); err != nil {
			return fmt.Errorf("failed to encode property %q: %w", key, err)
		}
	}

	if _, err := out.Write(w, fileEncoding); err != nil {
		return fmt.Errorf("failed to write properties: %w", err)
	}
	return nil
}

// WriteFile writes p to path, replacing any existing file.
func WriteFile(path string, p Properties) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create properties file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close properties file: %w", closeErr)
		}
	}()

	return Write(f, p)
}
