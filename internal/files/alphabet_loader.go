package files

import (
	"fmt"
	"os"
	"path/filepath"

	"pixelbanner/internal/config"
)

type AlphabetLoader struct {
	dir string
}

func NewAlphabetLoader(dir string) *AlphabetLoader {
	return &AlphabetLoader{dir: dir}
}

// Read returns the characters of the alphabet file in order, one string per rune.
func (l *AlphabetLoader) Read(fc config.FontConfig, widthMode string) ([]string, error) {
	path := filepath.Join(l.dir, fc.AlphabetFileName(widthMode))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read alphabet %s: %w", path, err)
	}

	alphabet := ParseAlphabet(string(data))
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("alphabet %s is empty", path)
	}
	return alphabet, nil
}

func ParseAlphabet(s string) []string {
	alphabet := make([]string, 0, len(s))
	for _, r := range s {
		if r == '\n' || r == '\r' {
			continue
		}
		alphabet = append(alphabet, string(r))
	}
	return alphabet
}
