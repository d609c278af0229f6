package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    Kind
		want    Clock
		wantErr bool
	}{
		{name: "wall", kind: KindWall, want: Wall},
		{name: "process", kind: KindProcess, want: Process},
		{name: "unknown", kind: Kind("cpu"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			clk, err := New(tt.kind)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, clk)
		})
	}
}

func TestWall_AdvancesAcrossSleep(t *testing.T) {
	t.Parallel()

	const nap = 10 * time.Millisecond

	before := Wall.Nanoseconds()
	time.Sleep(nap)
	after := Wall.Nanoseconds()

	require.GreaterOrEqual(t, after-before, nap.Nanoseconds())
}

func TestWall_Nondecreasing(t *testing.T) {
	t.Parallel()

	prev := Wall.Nanoseconds()
	for i := 0; i < 1000; i++ {
		now := Wall.Nanoseconds()
		require.GreaterOrEqual(t, now, prev)
		prev = now
	}
}

func TestProcess_Readable(t *testing.T) {
	t.Parallel()

	// CPU time barely advances in a unit test; just check readings are sane.
	first := Process.Nanoseconds()
	second := Process.Nanoseconds()
	require.GreaterOrEqual(t, first, int64(0))
	require.GreaterOrEqual(t, second, first)
}
