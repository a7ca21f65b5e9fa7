package wordfall

import (
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/wordfall/internal/config"
)

// Word is an english word and its chinese translation.
type Word struct {
	English string
	Chinese string
}

// Width returns the number of terminal columns the english text occupies.
func (w Word) Width() int {
	return runewidth.StringWidth(w.English)
}

// Dictionary is the fixed word list. A word's index is its identity:
// falling objects and the target refer to words by index only.
type Dictionary struct {
	words []Word
}

// NewDictionary copies the configured words into a Dictionary.
func NewDictionary(entries []config.Word) Dictionary {
	words := make([]Word, len(entries))
	for i, e := range entries {
		words[i] = Word{English: e.English, Chinese: e.Chinese}
	}
	return Dictionary{words: words}
}

// Len returns the number of words.
func (d Dictionary) Len() int {
	return len(d.words)
}

// At returns the word at index i. It panics if i is out of range.
func (d Dictionary) At(i int) Word {
	return d.words[i]
}

// Valid reports whether i refers to a word.
func (d Dictionary) Valid(i int) bool {
	return i >= 0 && i < len(d.words)
}
