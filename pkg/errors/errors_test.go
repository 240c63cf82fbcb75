package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataForKnownCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, MetadataFor(CodeValidation).HTTPStatus)
	assert.Equal(t, http.StatusNotFound, MetadataFor(CodeNotFound).HTTPStatus)
	assert.Equal(t, http.StatusConflict, MetadataFor(CodeDuplicatePO).HTTPStatus)
	assert.Equal(t, http.StatusServiceUnavailable, MetadataFor(CodeStorage).HTTPStatus)
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("SOMETHING_ELSE"))
	assert.Equal(t, http.StatusInternalServerError, meta.HTTPStatus)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("disk full")
	err := Wrap(CodeStorage, cause, "insert order")

	require.ErrorIs(t, err, cause)
	assert.Equal(t, CodeStorage, err.Code())
	assert.Equal(t, "STORAGE_ERROR: insert order", err.Error())
}

func TestAsUnwrapsThroughChain(t *testing.T) {
	inner := New(CodeDuplicatePO, "po already used")
	outer := stdErrors.Join(stdErrors.New("request failed"), inner)

	typed := As(outer)
	require.NotNil(t, typed)
	assert.Equal(t, CodeDuplicatePO, typed.Code())
}

func TestHasCode(t *testing.T) {
	err := New(CodeNotFound, "order not found")
	assert.True(t, HasCode(err, CodeNotFound))
	assert.False(t, HasCode(err, CodeValidation))
	assert.False(t, HasCode(stdErrors.New("plain"), CodeNotFound))
	assert.False(t, HasCode(nil, CodeNotFound))
}

func TestWithDetails(t *testing.T) {
	err := New(CodeValidation, "validation failed").WithDetails(map[string]string{"po_no": "is required"})
	require.NotNil(t, err.Details())

	details, ok := err.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", details["po_no"])
}

func TestDumpBuildsChain(t *testing.T) {
	cause := stdErrors.New("database is locked")
	err := Wrap(CodeStorage, cause, "update order")

	dump := Dump(err)
	assert.Equal(t, CodeStorage, dump.Code)
	assert.Len(t, dump.Chain, 2)
	assert.Equal(t, "STORAGE_ERROR: update order", dump.TopMessage)
}
