package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandVersion(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "cadcodec "+Version+"\n", buf.String())
}

func TestRootCommandSubcommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"version", "convert", "inspect", "watch"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestRootCommandConvert(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	input := filepath.Join(dir, "plan.dxf")
	require.NoError(t, os.WriteFile(input, []byte("0\nSECTION\n2\nENTITIES\n0\nCIRCLE\n10\n1\n20\n2\n40\n3\n0\nENDSEC\n0\nEOF\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cadcodec.yaml"), []byte("target: json\n"), 0o644))

	// the flag overrides the config file
	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"convert", "--to", "script", input})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "plan.scr"))
	require.NoError(t, err)
	assert.Equal(t, "CIRCLE 1,2 3\n", string(data))

	// the config file supplies the target
	cmd = NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"convert", input})
	require.NoError(t, cmd.Execute())
	_, err = os.Stat(filepath.Join(dir, "plan.json"))
	assert.NoError(t, err)
}

func TestRootCommandInvalidConfig(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"convert", "--to", "pdf", "plan.dxf"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid target")
}

// chdir changes the working directory for the duration of the test,
// equivalent to t.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
