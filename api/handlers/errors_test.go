package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	coreerrors "article-viewer-api/core/errors"
	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", &coreerrors.NotFoundError{Resource: "viewer", ID: "x"}, http.StatusNotFound},
		{"validation", &coreerrors.ValidationError{Field: "title", Message: "cannot be empty"}, http.StatusBadRequest},
		{"malformed", &coreerrors.MalformedResponseError{API: "parse", Field: "parse.text"}, http.StatusBadGateway},
		{"upstream 500", &coreerrors.ExternalAPIError{API: "parse", StatusCode: 500}, http.StatusServiceUnavailable},
		{"upstream 429", &coreerrors.ExternalAPIError{API: "users", StatusCode: 429}, http.StatusTooManyRequests},
		{"upstream 404", &coreerrors.ExternalAPIError{API: "whocolor", StatusCode: 404}, http.StatusBadRequest},
		{"upstream api error in 200", &coreerrors.ExternalAPIError{API: "parse", StatusCode: 200}, http.StatusBadGateway},
		{"wrapped not found", fmt.Errorf("lookup: %w", &coreerrors.NotFoundError{Resource: "viewer", ID: "x"}), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := toHumaError(tt.err)
			var statusErr huma.StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.status, statusErr.GetStatus())
		})
	}

	assert.Nil(t, toHumaError(nil))
}
