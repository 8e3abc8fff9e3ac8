package run

import (
	"bytes"
	"net/netip"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coral-mesh/calltrace/internal/cli/helpers"
	"github.com/coral-mesh/calltrace/internal/config"
	"github.com/coral-mesh/calltrace/internal/testutil"
	"github.com/coral-mesh/calltrace/pkg/probe"
)

type captureSocket struct {
	mu     sync.Mutex
	dest   netip.AddrPort
	events []probe.Event
}

func (s *captureSocket) open(dest netip.AddrPort) (probe.Socket, error) {
	s.dest = dest
	return s, nil
}

func (s *captureSocket) Send(b []byte) (int, error) {
	e, err := probe.DecodeEvent(b)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
	return len(b), nil
}

func (s *captureSocket) Close() error { return nil }

func TestTreeSize(t *testing.T) {
	tests := []struct {
		height, fanout, want int
	}{
		{1, 2, 1},
		{2, 2, 3},
		{4, 2, 15},
		{3, 3, 13},
		{5, 1, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, treeSize(tt.height, tt.fanout), "height=%d fanout=%d", tt.height, tt.fanout)
	}
}

func TestRun(t *testing.T) {
	cfg := config.Default()
	cfg.Workload.Depth = 3
	cfg.Workload.Fanout = 2
	cfg.Workload.Iterations = 2

	sock := &captureSocket{}
	var out bytes.Buffer

	summary, err := Run(cfg, probe.Config{Output: &out, Socket: sock.open}, testutil.NewTestLoggerWithOutput(t))
	require.NoError(t, err)

	want := 2 * treeSize(3, 2)
	assert.Equal(t, want, summary.Entries)
	assert.Equal(t, uint32(0), summary.FinalDepth)
	assert.Equal(t, probe.CollectorAddr, sock.dest)

	require.Len(t, sock.events, want)
	assert.Equal(t, uint64(0), sock.events[0].ElapsedMicros)

	// Pre-order walk: root, left child, left leaf, right leaf, right child, ...
	depths := make([]uint32, 0, treeSize(3, 2))
	for _, e := range sock.events[:treeSize(3, 2)] {
		depths = append(depths, e.Depth)
	}
	assert.Equal(t, []uint32{1, 2, 3, 3, 2, 3, 3}, depths)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, want)
	assert.True(t, strings.HasPrefix(lines[0], "[1] T 0, PC 0x"), lines[0])
}

func newTestCmd(global *helpers.GlobalFlags) *cobra.Command {
	root := &cobra.Command{Use: "calltrace", SilenceUsage: true, SilenceErrors: true}
	global.AddFlags(root.PersistentFlags())
	root.AddCommand(NewRunCmd(global))
	return root
}

func TestRunCmd_RejectsInvalidFlags(t *testing.T) {
	var global helpers.GlobalFlags
	root := newTestCmd(&global)
	root.SetArgs([]string{"run", "--config", t.TempDir() + "/none.yaml", "--fanout", "0"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workload.fanout")
}

func TestRun_DeliversToCollector(t *testing.T) {
	cfg := config.Default()
	cfg.Workload.Depth = 2
	cfg.Workload.Fanout = 1
	cfg.Workload.Iterations = 1

	collector := testutil.NewCollector(t)
	open := func(netip.AddrPort) (probe.Socket, error) {
		return probe.DefaultSocket(collector.Addr())
	}

	summary, err := Run(cfg, probe.Config{Output: &bytes.Buffer{}, Socket: open}, testutil.NewTestLogger(t))
	require.NoError(t, err)
	require.Equal(t, 2, summary.Entries)

	for _, wantDepth := range []uint32{1, 2} {
		e, err := probe.DecodeEvent(collector.Next(5 * time.Second))
		require.NoError(t, err)
		assert.Equal(t, wantDepth, e.Depth)
		assert.NotZero(t, e.CallSite)
		assert.NotZero(t, e.StackPointer)
	}
}
