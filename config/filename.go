package config

import (
	"strings"
	"unicode/utf8"
)

// Most file systems limit name component to 255 bytes, leave room for
// extension and report suffixes.
const maxFileNameBytes = 200

const badFileName = "_bad_file_name_"

// finishFileName trims surrounding blanks and cuts name to the size limit
// without splitting multibyte runes.
func finishFileName(name string) string {
	name = strings.TrimSpace(name)
	if len(name) > maxFileNameBytes {
		cut := maxFileNameBytes
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = strings.TrimSpace(name[:cut])
	}
	if len(name) == 0 {
		return badFileName
	}
	return name
}
