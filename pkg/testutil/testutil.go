package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/status"
)

// RequireEqualStatus asserts that two gRPC statuses are equal.
func RequireEqualStatus(t *testing.T, want, got error) {
	t.Helper()
	wantStatus := status.Convert(want)
	gotStatus := status.Convert(got)
	require.Equal(t, wantStatus.Code(), gotStatus.Code(), "status codes differ")
	require.Equal(t, wantStatus.Message(), gotStatus.Message(), "status messages differ")
}
