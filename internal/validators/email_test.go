package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	valid := []string{"ana@example.com", "a.b+c@sub.example.com.br"}
	for _, email := range valid {
		assert.True(t, IsEmailValid(email), email)
	}

	invalid := []string{"", "ana", "ana@", "@example.com", "ana@semponto", "ana@.com", "ana@example."}
	for _, email := range invalid {
		assert.False(t, IsEmailValid(email), email)
	}
}
