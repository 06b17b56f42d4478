package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/config"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/handler"
	myGRPC "github.com/Zeafen/Recipe-Sharing-sub002/internal/handler/grpc"
	myHTTP "github.com/Zeafen/Recipe-Sharing-sub002/internal/handler/http"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type versionService struct{}

func (versionService) GetAppVersion(context.Context) string { return "1.2.3" }

func newTestServer(t *testing.T, cfg config.Server) *server {
	t.Helper()
	services := &service.Services{AppInfoService: versionService{}}
	handlers := &handler.Handlers{
		HTTP: myHTTP.NewHandler(services, cfg, logger.Nop()),
		GRPC: myGRPC.NewHandler(services, logger.Nop()),
	}

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

// addrOf returns the bound address of the named transport.
func addrOf(t *testing.T, s *server, name string) string {
	t.Helper()
	for _, tr := range s.transports {
		if tr.name() == name {
			require.NotNil(t, tr.addr())
			return tr.addr().String()
		}
	}
	t.Fatalf("no %s transport", name)
	return ""
}

func TestNewServer_NoAddresses(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestServer_StartServeShutdown(t *testing.T) {
	s := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"})
	require.NoError(t, s.start())

	httpAddr := addrOf(t, s, "http")
	resp, err := http.Get("http://" + httpAddr + "/api/version")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1.2.3", string(body))

	conn, err := grpc.NewClient(addrOf(t, s, "grpc"),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	check, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check.GetStatus())

	s.Shutdown()

	_, err = http.Get("http://" + httpAddr + "/api/version")
	assert.Error(t, err)
}

func TestServer_RunStopsWhenContextIsDone(t *testing.T) {
	s := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:0"})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_AddressInUse(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	s := newTestServer(t, config.Server{HTTPAddress: taken.Addr().String()})

	err = s.run(context.Background())
	require.ErrorIs(t, err, errListen)
	assert.Contains(t, err.Error(), "http")
}

func TestServer_ListenFailureReleasesBoundListeners(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	s := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: taken.Addr().String()})

	err = s.start()
	require.ErrorIs(t, err, errListen)
	assert.Contains(t, err.Error(), "grpc")
	assert.Empty(t, s.started)

	httpAddr := addrOf(t, s, "http")
	_, err = net.DialTimeout("tcp", httpAddr, time.Second)
	assert.Error(t, err, "http listener must be closed after a failed start")
}

func TestNewServer_OnlyConfiguredTransports(t *testing.T) {
	s := newTestServer(t, config.Server{GRPCAddress: "127.0.0.1:0"})

	require.Len(t, s.transports, 1)
	assert.Equal(t, "grpc", s.transports[0].name())
}
