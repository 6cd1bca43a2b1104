package config

import (
	"strings"
)

const badFileName = "_bad_file_name_"

func cleanFileName(in, forbidden string) string {
	out := strings.Map(func(sym rune) rune {
		if sym < ' ' || strings.ContainsRune(forbidden, sym) {
			return -1
		}
		return sym
	}, in)
	out = strings.TrimSpace(strings.TrimLeft(out, "."))
	if len(out) == 0 {
		return badFileName
	}
	return out
}
