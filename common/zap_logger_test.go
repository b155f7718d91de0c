/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package common

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerRespectsLevel(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	zl := NewZapLogger(zap.New(core), LogLevelDebug)

	zl.Trace("should not appear: %d", 1)
	zl.Debug("should appear: %d", 2)
	zl.Error("should appear: %s", "boom")

	messages := make([]string, 0, logs.Len())
	for _, entry := range logs.All() {
		messages = append(messages, entry.Message)
	}
	require.Contains(t, messages, "should appear: 2")
	require.Contains(t, messages, "should appear: boom")
	require.NotContains(t, messages, "should not appear: 1")
}

func TestZapLoggerIsLogLevel(t *testing.T) {
	zl := NewZapLogger(zap.NewNop(), LogLevelWarning)
	require.True(t, zl.IsLogLevel(LogLevelError))
	require.True(t, zl.IsLogLevel(LogLevelWarning))
	require.False(t, zl.IsLogLevel(LogLevelDebug))
}
