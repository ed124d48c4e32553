// Package words loads the Hangman word bank.
//
// Words are read one per line, trimmed and uppercased. Lines that are blank
// or contain anything other than A-Z are skipped. Loading never fails: when a
// source is missing or yields no words, the embedded default list is used.
package words

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"strings"
)

//go:embed default.txt
var defaultWords string

// fallbackWords is used if the embedded list is unusable.
var fallbackWords = []string{"MAUI", "HANGMAN", "DOTNET", "MOBILE", "DEVELOPER"}

// Bank is an immutable list of candidate words.
type Bank struct {
	words    []string
	fallback bool
}

// New builds a bank from the given words, normalized. It does not fall back,
// so the result may be empty.
func New(words ...string) *Bank {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if n, ok := Normalize(w); ok {
			out = append(out, n)
		}
	}
	return &Bank{words: out}
}

// Default returns the built-in word bank.
func Default() *Bank {
	b := New(strings.Split(defaultWords, "\n")...)
	if b.Len() == 0 {
		b = New(fallbackWords...)
	}
	b.fallback = true
	return b
}

// Load reads one word per line from r. If r yields no usable words
// (or fails to read), the default bank is returned.
func Load(r io.Reader) *Bank {
	if r == nil {
		return Default()
	}

	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if sc.Err() != nil {
		return Default()
	}

	b := New(lines...)
	if b.Len() == 0 {
		return Default()
	}
	return b
}

// LoadFile loads words from path. An empty path or unreadable file
// yields the default bank.
func LoadFile(path string) *Bank {
	if path == "" {
		return Default()
	}
	f, err := os.Open(expandHome(path))
	if err != nil {
		return Default()
	}
	defer f.Close()
	return Load(f)
}

// Normalize trims and uppercases w and reports whether it is a valid word.
func Normalize(w string) (string, bool) {
	w = strings.ToUpper(strings.TrimSpace(w))
	if w == "" {
		return "", false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return "", false
		}
	}
	return w, true
}

// Len returns the number of words.
func (b *Bank) Len() int { return len(b.words) }

// Word returns the i-th word.
func (b *Bank) Word(i int) string { return b.words[i] }

// Words returns a copy of all words.
func (b *Bank) Words() []string {
	return append([]string(nil), b.words...)
}

// Contains reports whether w (in any case) is in the bank.
func (b *Bank) Contains(w string) bool {
	n, ok := Normalize(w)
	if !ok {
		return false
	}
	for _, x := range b.words {
		if x == n {
			return true
		}
	}
	return false
}

// IsFallback reports whether the bank came from the built-in list.
func (b *Bank) IsFallback() bool { return b.fallback }

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}
