package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRootCmd(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "gnplants", cmd.Use)

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, v := range []string{"create", "import", "export", "parse"} {
		assert.Contains(t, names, v)
	}

	for _, v := range []string{"jobs", "plants-db", "gf-driver", "gf-path"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(v), v)
	}
}

func TestVersion(t *testing.T) {
	tests := []struct {
		msg  string
		flag string
	}{
		{"long flag", "--version"},
		{"short flag", "-V"},
	}

	for _, v := range tests {
		cmd := getRootCmd()
		cmd.Version = "version: v1.2.3\nbuild:   abc123"

		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{v.flag})

		require.NoError(t, cmd.Execute(), v.msg)
		assert.Contains(t, buf.String(), "v1.2.3", v.msg)
		assert.Contains(t, buf.String(), "abc123", v.msg)
	}
}

func TestHelpText(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	help := buf.String()
	assert.Contains(t, help, "gnplants")
	assert.Contains(t, help, "Gallformers")
	assert.Contains(t, help, "GNPLANTS_")
}
