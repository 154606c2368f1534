package logger

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestStringToLogLevel(t *testing.T) {
	a := assert.New(t)

	a.Equal(ERROR, StringToLogLevel("ERROR"))
	a.Equal(WARN, StringToLogLevel("warn"))
	a.Equal(INFO, StringToLogLevel("Info"))
	a.Equal(DEBUG, StringToLogLevel("debug"))
	a.Equal(TRACE, StringToLogLevel("TRACE"))
	a.Equal(INFO, StringToLogLevel("verbose"))
}

func TestLogLevel_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("DEBUG", DEBUG.String())
	a.Equal("UNKNOWN", LogLevel(42).String())
}

func TestNullWriter_Write(t *testing.T) {
	n, err := nullWriter.Write([]byte("discarded"))

	assert.Nil(t, err)
	assert.Equal(t, 9, n)
}
