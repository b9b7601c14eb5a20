package convert

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/h2non/filetype"
)

// enough for filetype matchers
const headerSize = 262

var sheetExts = []string{".yaml", ".yml", ".json"}

func readHeader(r io.Reader) ([]byte, error) {
	head := make([]byte, headerSize)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return head[:n], nil
}

// isArchiveFile reports whether file is a zip archive. Extension is checked
// first, content has to agree.
func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}
	head, err := readHeader(f)
	if err != nil {
		return false, fmt.Errorf("unable to read file header: %w", err)
	}
	return filetype.Is(head, "zip"), nil
}

// looksLikeSheet checks name and the beginning of the content. Call sheet
// snapshots are text, anything filetype recognizes is not ours.
func looksLikeSheet(name string, head []byte) bool {
	if !slices.Contains(sheetExts, strings.ToLower(filepath.Ext(name))) {
		return false
	}
	if kind, _ := filetype.Match(head); kind != filetype.Unknown {
		return false
	}
	return !bytes.ContainsRune(head, 0)
}

func isCallSheetFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head, err := readHeader(f)
	if err != nil {
		return false, fmt.Errorf("unable to read file header: %w", err)
	}
	return looksLikeSheet(path, head), nil
}

func isCallSheetInArchive(f *zip.File) (bool, error) {
	if !slices.Contains(sheetExts, strings.ToLower(filepath.Ext(f.Name))) {
		return false, nil
	}
	r, err := f.Open()
	if err != nil {
		return false, err
	}
	defer r.Close()

	head, err := readHeader(r)
	if err != nil {
		return false, fmt.Errorf("unable to read file header: %w", err)
	}
	return looksLikeSheet(f.Name, head), nil
}
