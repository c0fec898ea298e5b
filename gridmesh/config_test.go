package gridmesh_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshkit/gridmesh"
	"github.com/katalvlaran/meshkit/topology"
)

func TestParseConfig(t *testing.T) {
	cfg, err := gridmesh.ParseConfig([]byte("width: 5\nheight: 2\nconnectivity: conn8\n"))
	require.NoError(t, err)
	require.Equal(t, gridmesh.Config{Width: 5, Height: 2, Connectivity: "conn8"}, cfg)

	g, conn, err := gridmesh.FromConfig(cfg)
	require.NoError(t, err)
	require.Equal(t, gridmesh.Conn8, conn)
	require.Equal(t, 10, g.Size(topology.DimFace))
}

func TestParseConfig_Malformed(t *testing.T) {
	_, err := gridmesh.ParseConfig([]byte("width: [1, 2"))
	require.Error(t, err)
}

func TestConfigConn(t *testing.T) {
	cases := []struct {
		name string
		want gridmesh.Connectivity
		err  error
	}{
		{"", gridmesh.Conn4, nil},
		{"conn4", gridmesh.Conn4, nil},
		{" CONN8 ", gridmesh.Conn8, nil},
		{"hex", gridmesh.Conn4, gridmesh.ErrConnectivity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := gridmesh.Config{Connectivity: tc.name}.Conn()
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFromConfig_Errors(t *testing.T) {
	_, _, err := gridmesh.FromConfig(gridmesh.Config{Width: 0, Height: 2})
	require.ErrorIs(t, err, gridmesh.ErrEmptyGrid)

	_, _, err = gridmesh.FromConfig(gridmesh.Config{Width: 2, Height: 2, Connectivity: "tri"})
	require.ErrorIs(t, err, gridmesh.ErrConnectivity)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mesh.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 3\nheight: 4\n"), 0o644))

	cfg, err := gridmesh.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Width)
	require.Equal(t, 4, cfg.Height)
	require.Empty(t, cfg.Connectivity)

	_, err = gridmesh.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
