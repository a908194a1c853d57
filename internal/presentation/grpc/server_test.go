package grpc

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/bibbank/mortgage-service/pkg/auth"
	"github.com/bibbank/mortgage-service/pkg/testutil"
)

func startTestServer(t *testing.T) (*grpc.ClientConn, *auth.JWTService) {
	t.Helper()

	jwtSvc, err := auth.NewJWTService(auth.JWTConfig{
		Secret:     "test-secret",
		Issuer:     "bib-identity",
		Expiration: time.Hour,
	})
	require.NoError(t, err)

	handler, _ := buildTestHandler()
	srv, err := NewServer(handler, testLogger(), jwtSvc, ServerOptions{})
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.ServeListener(lis) }()
	t.Cleanup(srv.GracefulStop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype("json")),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn, jwtSvc
}

func TestServer_EndToEnd(t *testing.T) {
	conn, jwtSvc := startTestServer(t)

	t.Run("health check needs no token", func(t *testing.T) {
		resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName},
			grpc.CallContentSubtype("proto"))
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	})

	t.Run("calls without a token are rejected", func(t *testing.T) {
		var resp ListMortgagesResponse
		err := conn.Invoke(context.Background(), "/"+ServiceName+"/ListMortgages", &ListMortgagesRequest{}, &resp)
		requireGRPCCode(t, err, codes.Unauthenticated)
	})

	t.Run("tokens without a mortgage role are refused", func(t *testing.T) {
		token, err := jwtSvc.GenerateToken(testutil.TestOwnerID, []string{"auditor"})
		require.NoError(t, err)
		ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)

		var resp ListMortgagesResponse
		err = conn.Invoke(ctx, "/"+ServiceName+"/ListMortgages", &ListMortgagesRequest{}, &resp)
		requireGRPCCode(t, err, codes.PermissionDenied)
	})

	t.Run("authenticated caller creates and reads a ledger", func(t *testing.T) {
		token, err := jwtSvc.GenerateToken(testutil.TestOwnerID, []string{auth.RoleCustomer})
		require.NoError(t, err)
		ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)

		var created MortgageResponse
		require.NoError(t, conn.Invoke(ctx, "/"+ServiceName+"/CreateMortgage", flatRequest(), &created))
		assert.Equal(t, testutil.TestOwnerID, created.OwnerID)

		var ledger LedgerResponse
		require.NoError(t, conn.Invoke(ctx, "/"+ServiceName+"/GetLedger",
			&MortgageRequest{MortgageID: created.ID.String()}, &ledger))
		assert.Len(t, ledger.Entries, 114)
		testutil.AssertDecimal(t, "14936.70", ledger.TotalCost)
		assert.Equal(t, "2020-01", ledger.Entries[0].Name)
	})
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	interceptor := LoggingInterceptor(logger)

	info := &grpc.UnaryServerInfo{FullMethod: "/" + ServiceName + "/GetLedger"}
	_, err := interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.NotFound, "missing")
	})

	requireGRPCCode(t, err, codes.NotFound)
	assert.Contains(t, buf.String(), "code=NotFound")
	assert.Contains(t, buf.String(), "GetLedger")
}
