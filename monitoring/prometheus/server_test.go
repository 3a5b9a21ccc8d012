package prometheus_test

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/prysmaticlabs/attestation-bench/monitoring/prometheus"
	"github.com/prysmaticlabs/attestation-bench/testing/assert"
	"github.com/prysmaticlabs/attestation-bench/testing/require"
	"github.com/sirupsen/logrus"
)

func TestServer_ServesMetrics(t *testing.T) {
	srv, err := prometheus.NewServer("127.0.0.1:0")
	require.NoError(t, err)
	srv.Start()

	logrus.AddHook(prometheus.NewLogrusCollector())
	logrus.WithField("prefix", "server-test").Warn("Counted")

	resp, err := http.Get(fmt.Sprintf("http://%s/metrics", srv.Addr()))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, true, strings.Contains(string(body), `log_entries_total{level="warning",prefix="server-test"}`))

	require.NoError(t, srv.Stop())
}

func TestNewServer_AddressInUse(t *testing.T) {
	srv, err := prometheus.NewServer("127.0.0.1:0")
	require.NoError(t, err)
	defer func() {
		srv.Start()
		require.NoError(t, srv.Stop())
	}()
	_, err = prometheus.NewServer(srv.Addr())
	assert.ErrorContains(t, "could not listen on", err)
}
