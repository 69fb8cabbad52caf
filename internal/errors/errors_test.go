package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessageIncludesSortedContext(t *testing.T) {
	err := ReadFailed("books/a.md", stderrors.New("permission denied"))
	assert.Equal(t, "filesystem (fatal): read failed path=books/a.md: permission denied", err.Error())

	cfgErr := ConfigRequired("book.repository-url", "REPOSITORY_URL")
	assert.Equal(t, "config (fatal): required configuration missing env=REPOSITORY_URL field=book.repository-url", cfgErr.Error())
}

func TestCategoryThroughWrapping(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := fmt.Errorf("page b.md: %w", TranslationFailed("b.md", cause))

	assert.True(t, IsCategory(err, CategoryNetwork))
	assert.False(t, IsCategory(err, CategoryConfig))
	assert.Equal(t, CategoryNetwork, GetCategory(err))
	require.ErrorIs(t, err, cause)

	assert.Equal(t, CategoryInternal, GetCategory(stderrors.New("plain")))
}
