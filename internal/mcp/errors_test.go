package mcp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rpggio/corkboard/internal/domain/activity"
	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/domain/mirror"
	"github.com/rpggio/corkboard/internal/domain/trash"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	cases := map[error]string{
		trash.ErrInvalidTransition:                        "PRECONDITION_FAILED",
		fmt.Errorf("list l1: %w", mirror.ErrListNotFound): "PRECONDITION_FAILED",
		board.ErrTransport:                                "TRANSPORT_ERROR",
		board.ErrNotFound:                                 "NOT_FOUND",
		board.ErrUsernameTaken:                            "CONFLICT",
		mirror.ErrDesync:                                  "DESYNC",
		activity.ErrInvalidInput:                          "INVALID_INPUT",
		fmt.Errorf("id: %w", errInvalidInput):             "INVALID_INPUT",
	}
	for err, code := range cases {
		apiErr := MapError(err)
		require.NotNil(t, apiErr, err.Error())
		require.Equal(t, code, apiErr.Code, err.Error())
	}

	require.Nil(t, MapError(nil))
	require.Nil(t, MapError(errors.New("boom")))
}
