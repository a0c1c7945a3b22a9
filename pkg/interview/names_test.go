package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"my name is", "My name is Priya", "Priya"},
		{"contraction", "Hi, I'm Aatif", "Aatif"},
		{"backtick apostrophe", "i`m carlos", "Carlos"},
		{"i am", "I am Jordan and I like math", "Jordan"},
		{"call me", "you can call me Sam", "Sam"},
		{"this is", "this is Maria", "Maria"},
		{"name here", "Devon here!", "Devon"},
		{"bare name", "Priya", "Priya"},
		{"bare name with period", "Priya.", "Priya"},
		{"lowercase normalized", "my name is priya", "Priya"},
		{"numeric answer", "42", ""},
		{"plain sentence", "these questions are fun so far", ""},
		{"single letter rejected", "my name is J", ""},
		{"empty message", "", ""},
		{"whitespace only", "   ", ""},
		{"long bare word rejected", "Supercalifragilisticexpialidocious", ""},
		{"question not a name", "What do you mean?", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractName(tt.message))
		})
	}
}

func TestExtractName_FirstPatternWins(t *testing.T) {
	// "i'm" ranks above "this is" in the matcher order
	assert.Equal(t, "Leo", ExtractName("this is weird but I'm Leo"))

	// explicit introduction beats the bare-word fallback
	assert.Equal(t, "Ana", ExtractName("my name is Ana"))
}
