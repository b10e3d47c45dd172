package log

import (
	"bytes"
	"testing"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("plain prefix", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("APP", "", &buf)
		require.NoError(t, err)

		l.Info("started")
		l.Warning("slow terminal")
		l.Error("boom")
		l.Debug("tick")

		assert.Equal(t,
			"[APP] [INFO] started\n[APP] [WARNING] slow terminal\n[APP] [ERROR] boom\n[APP] [DEBUG] tick\n",
			buf.String())
	})

	t.Run("colored prefix", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("CARVER", config.ColorCyan, &buf)
		require.NoError(t, err)

		l.Info("carving")
		assert.Equal(t, config.ColorCyan+"[CARVER] [INFO]"+config.ColorReset+" carving\n", buf.String())
	})

	t.Run("invalid arguments", func(t *testing.T) {
		_, err := New("", "", &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrEmptyPrefix)

		_, err = New("APP", "", nil)
		assert.ErrorIs(t, err, ErrNilWriter)
	})
}
