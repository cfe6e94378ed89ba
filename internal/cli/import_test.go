package cli

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocab-forge/vocabforge/internal/remote"
)

func TestReadTerms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.txt")
	content := "dog\n\n# animals below\ncat\n  fish  \n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	terms, err := readTerms(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"dog", "cat", "fish"}, terms,
		"blank lines and comments are skipped, whitespace trimmed")
}

func TestReadTerms_MissingFile(t *testing.T) {
	_, err := readTerms(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestIsDuplicateApp(t *testing.T) {
	assert.True(t, isDuplicateApp(&remote.APIError{StatusCode: http.StatusBadRequest, Message: "duplicate"}))
	assert.True(t, isDuplicateApp(assertableError("app \"lingodeer\" already exists")))
	assert.False(t, isDuplicateApp(assertableError("connection refused")))
}

type assertableError string

func (e assertableError) Error() string { return string(e) }

func TestParseLangPairs(t *testing.T) {
	pairs, err := parseLangPairs([]string{"fr=chien", "ja=犬"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"fr": "chien", "ja": "犬"}, pairs)

	_, err = parseLangPairs([]string{"no-equals-sign"})
	assert.Error(t, err)

	_, err = parseLangPairs([]string{"klingon=targ"})
	assert.Error(t, err, "unknown language codes are rejected")

	empty, err := parseLangPairs(nil)
	require.NoError(t, err)
	assert.Nil(t, empty)
}
