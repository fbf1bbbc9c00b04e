package slack

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAuthorizationErrorSurfacesMessageVerbatim(t *testing.T) {
	err := &AuthorizationError{Message: "invalid_code"}
	require.Equal(t, "invalid_code", err.Error())
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("something went wrong")
	err := &TransportError{Cause: cause}
	require.Contains(t, err.Error(), "something went wrong")
	require.ErrorIs(t, err, cause)
}

func TestFixedErrorMessages(t *testing.T) {
	require.Equal(
		t,
		"Access token not specified",
		(&NotConfiguredError{}).Error(),
	)
	require.Equal(
		t,
		"There was an error when posting to Slack",
		(&DeliveryError{}).Error(),
	)
}
