package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransliterate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"georgian name", "გიორგი ბერიძე", "Giorgi Beridze"},
		{"digraphs", "შოთა", "Shota"},
		{"latin passes through", "ana", "Ana"},
		{"mixed keeps punctuation", "ანა-მარია", "Ana-maria"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transliterate(tt.in))
		})
	}
}
