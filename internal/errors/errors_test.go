package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCode(t *testing.T) {
	inner := InvalidSampleRequest(5, 3)
	wrapped := Wrap(inner, "sampling pain points")

	assert.Equal(t, CodeInvalidSampleRequest, GetCode(wrapped))
	assert.Contains(t, wrapped.Error(), "sampling pain points")
	assert.Contains(t, wrapped.Error(), "cannot draw 5 distinct items from a pool of 3")
	assert.True(t, stderrors.Is(wrapped, inner))
}

func TestWrapPlainErrorIsInternal(t *testing.T) {
	wrapped := Wrap(fmt.Errorf("boom"), "saving report")
	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeNotFound, fmt.Errorf("no rows"))
	assert.Equal(t, CodeNotFound, GetCode(err))
	assert.Equal(t, "UNKNOWN", GetCode(fmt.Errorf("plain")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{InvalidInput("bad body"), http.StatusBadRequest},
		{InvalidSampleRequest(11, 10), http.StatusBadRequest},
		{NotFound("simulation report"), http.StatusNotFound},
		{UnknownPersona("persona_99"), http.StatusNotFound},
		{DatabaseError("insert failed", fmt.Errorf("conn refused")), http.StatusInternalServerError},
		{fmt.Errorf("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, HTTPStatus(tt.err), tt.err.Error())
	}
}
