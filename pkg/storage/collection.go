package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/blackcoderx/postman-merge/pkg/collection"
)

var (
	// ErrNotFound is returned when a collection file does not exist.
	ErrNotFound = errors.New("collection file not found")
	// ErrMalformed is returned when a collection file is not a JSON object with
	// a top-level item list.
	ErrMalformed = errors.New("malformed collection")
)

// LoadCollection reads and parses a collection file. It returns the parsed
// document together with the raw bytes it was parsed from.
func LoadCollection(filePath string) (*collection.Document, []byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, filePath)
		}
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Files must be UTF-8; invalid bytes are never replaced with U+FFFD
	if !utf8.Valid(data) {
		return nil, nil, fmt.Errorf("%w: invalid UTF-8", ErrMalformed)
	}

	doc, err := collection.Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return doc, data, nil
}

// SaveCollection overwrites filePath with serialized collection content,
// keeping the permissions of the existing file.
func SaveCollection(filePath string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(filePath); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(filePath, data, mode); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// DecodeFolder converts a section into the typed folder model. Unknown fields
// are ignored, so any section that is an object decodes.
func DecodeFolder(section collection.Value) (Folder, error) {
	data, err := collection.Encode(section, "")
	if err != nil {
		return Folder{}, fmt.Errorf("failed to encode section: %w", err)
	}

	var folder Folder
	if err := json.Unmarshal(data, &folder); err != nil {
		return Folder{}, fmt.Errorf("failed to decode section: %w", err)
	}

	return folder, nil
}
