package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailMessage(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{body: `{"detail":"Invalid credentials"}`, want: "Invalid credentials"},
		{body: `{"detail":"  padded  "}`, want: "padded"},
		{body: `{"detail":null}`, want: FallbackMessage},
		{body: `{"detail":42}`, want: FallbackMessage},
		{body: `{"detail":[]}`, want: FallbackMessage},
		{body: `{"detail":[{"msg":""}]}`, want: FallbackMessage},
		{body: `{"detail":[{"msg":"field required"},{"msg":"second"}]}`, want: "field required"},
		{body: `{"message":"wrong field name"}`, want: FallbackMessage},
		{body: `[1,2]`, want: FallbackMessage},
		{body: ``, want: FallbackMessage},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			assert.Equal(t, tt.want, detailMessage([]byte(tt.body)))
		})
	}
}

func TestRequestFailedError_String(t *testing.T) {
	err := &RequestFailedError{StatusCode: 400, Message: "Password too short"}

	assert.Equal(t, "Password too short", err.Error())
	assert.Equal(t, "http 400: Password too short", err.String())
}
