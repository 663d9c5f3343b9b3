package interactions

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateLogRequest(t *testing.T) {
	for _, action := range []string{ActionView, ActionClick, ActionLike, ActionSave, ActionShare} {
		err := ValidateLogRequest(&LogRequest{HookID: "x", Action: action})
		require.NoError(t, err)
	}

	err := ValidateLogRequest(&LogRequest{HookID: "x", Action: "upvote"})
	require.Error(t, err)

	err = ValidateLogRequest(&LogRequest{HookID: "x", Action: ActionView, Duration: -1})
	require.Error(t, err)

	err = ValidateLogRequest(&LogRequest{HookID: "x", Action: ActionView, Duration: 42.5})
	require.NoError(t, err)
}
