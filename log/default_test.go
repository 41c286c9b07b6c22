package log

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultDiscardsUntilSet(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	SetDefault(nil)

	require.NotNil(t, Default())
	require.NotPanics(t, func() { Errorf("discarded") })
	require.Equal(t, uint64(1), Default().Stats().Emitted)
}

func TestDefaultPackageFunctions(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	sink := &recordingSink{}
	SetDefault(New(Options{Sink: sink, Threshold: StaticThreshold(LevelInfo)}))

	Debugf("debug %d", 1)
	Infof("info %d", 2)
	Warnf("warn %d", 3)
	Errorf("error %d", 4)
	Logf(LevelWarn, "logf %d", 5)
	Logf(LevelDebug, "logf %d", 6)

	require.False(t, Enabled(LevelDebug))
	require.True(t, Enabled(LevelInfo))
	require.Equal(t, []Record{
		{Level: LevelInfo, Message: "info 2"},
		{Level: LevelWarn, Message: "warn 3"},
		{Level: LevelError, Message: "error 4"},
		{Level: LevelWarn, Message: "logf 5"},
	}, sink.Records())
}
