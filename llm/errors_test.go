package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLLMError(t *testing.T) {
	testCases := []struct {
		name          string
		errType       ErrorType
		message       string
		underlyingErr error
		expectedStr   string
	}{
		{
			name:          "request error with underlying error",
			errType:       ErrorTypeRequest,
			message:       "failed to connect",
			underlyingErr: errors.New("connection refused"),
			expectedStr:   "RequestError (failed to connect): connection refused",
		},
		{
			name:        "API error without underlying error",
			errType:     ErrorTypeAPI,
			message:     "status 500",
			expectedStr: "APIError: status 500",
		},
		{
			name:        "rate limit error",
			errType:     ErrorTypeRateLimit,
			message:     "status 429",
			expectedStr: "RateLimitError: status 429",
		},
		{
			name:        "authentication error",
			errType:     ErrorTypeAuthentication,
			message:     "status 401",
			expectedStr: "AuthenticationError: status 401",
		},
		{
			name:        "unknown error",
			errType:     ErrorTypeUnknown,
			message:     "mystery",
			expectedStr: "UnknownError: mystery",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			llmErr := NewLLMError(tc.errType, tc.message, tc.underlyingErr)

			assert.Equal(t, tc.errType, llmErr.Type)
			assert.Equal(t, tc.message, llmErr.Message)
			assert.Equal(t, tc.expectedStr, llmErr.Error())

			if tc.underlyingErr != nil {
				assert.Equal(t, tc.underlyingErr, errors.Unwrap(llmErr))
			}
		})
	}
}
