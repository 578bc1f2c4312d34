package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnplants/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	orig := errors.New("permission denied")
	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
		path string
		text string
	}{
		{
			msg:  "create dir",
			err:  CreateDirError("/test/dir", orig),
			code: errcode.CreateDirError,
			path: "/test/dir",
			text: "cannot create directory",
		},
		{
			msg:  "copy file",
			err:  CopyFileError("/test/config.yaml", orig),
			code: errcode.CopyFileError,
			path: "/test/config.yaml",
			text: "cannot copy file",
		},
		{
			msg:  "read file",
			err:  ReadFileError("/test/config.yaml", orig),
			code: errcode.ReadFileError,
			path: "/test/config.yaml",
			text: "cannot read file",
		},
	}

	for _, v := range tests {
		var gnErr *gn.Error
		require.True(t, errors.As(v.err, &gnErr), v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.Contains(t, gnErr.Msg, "<em>%s</em>", v.msg)
		require.Len(t, gnErr.Vars, 1, v.msg)
		assert.Equal(t, v.path, gnErr.Vars[0], v.msg)
		assert.ErrorIs(t, gnErr.Err, orig, v.msg)
		assert.Contains(t, gnErr.Err.Error(), v.text, v.msg)
		assert.Contains(t, gnErr.Err.Error(), "TestErrors", v.msg)
	}
}
