package formscrape_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/formscrape"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := formscrape.Errorf(formscrape.ENOTFOUND, "select %q not found", "ddlState")

	assert.Equal(t, formscrape.ENOTFOUND, formscrape.ErrorCode(err))
	assert.Equal(t, "select \"ddlState\" not found", formscrape.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, formscrape.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, formscrape.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("scan: %w", formscrape.Errorf(formscrape.EMALFORMED, "unterminated value"))

	assert.Equal(t, formscrape.EMALFORMED, formscrape.ErrorCode(err))
	assert.Equal(t, "unterminated value", formscrape.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, formscrape.EINTERNAL, formscrape.ErrorCode(err))
	assert.Equal(t, "Internal error.", formscrape.ErrorMessage(err))
}
