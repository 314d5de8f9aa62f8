package confirmcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := Generate()
		require.NoError(t, err)
		assert.Len(t, code, Length)
		assert.True(t, IsValid(code), "generated code %q has invalid characters", code)
	}
}

func TestGenerate_NotConstant(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := Generate()
		require.NoError(t, err)
		seen[code] = true
	}
	// 50 кодов из 36^8 вариантов не должны совпасть все до одного
	assert.Greater(t, len(seen), 1)
}

func TestGenerate_CoversWholeAlphabet(t *testing.T) {
	// Отбраковка байтов выше границы не должна выключать часть алфавита:
	// на 2000 кодов каждый из 36 символов встречается с большим запасом
	seen := make(map[byte]bool)
	for i := 0; i < 2000 && len(seen) < len(alphabet); i++ {
		code, err := Generate()
		require.NoError(t, err)
		for j := 0; j < len(code); j++ {
			seen[code[j]] = true
		}
	}
	assert.Len(t, seen, len(alphabet))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ABCD1234", Normalize("abcd1234"))
	assert.Equal(t, "ABCD1234", Normalize("  Abcd1234 "))
	assert.Equal(t, "ABCD1234", Normalize("ABCD1234"))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("ABCD1234"))
	assert.False(t, IsValid("abcd1234"))
	assert.False(t, IsValid("ABC123"))
	assert.False(t, IsValid("ABCD12345"))
	assert.False(t, IsValid("ABCD-234"))
}
