package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, "привет...", Truncate("привет мир", 6))
}

func TestNormalizeWhitespace(t *testing.T) {
	in := "  first   line \n\n\n  second\tline  \n"
	assert.Equal(t, "first line\nsecond line", NormalizeWhitespace(in))
	assert.Equal(t, "", NormalizeWhitespace("   \n \t \n"))
}

func TestErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	ErrorResponse(rec, 400, "bad input")

	assert.Equal(t, 400, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Bad Request","message":"bad input"}`, rec.Body.String())
}
