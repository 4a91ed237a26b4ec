// SPDX-License-Identifier: MIT
package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies gatherOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := gatherOptions()
	require.Equal(t, DefaultValidateNaNInf, o.validateNaNInf)
	require.Equal(t, defaultOptions(), o)
}

// TestGatherOptions_LastWriterWins ensures setters apply in order and nil setters are skipped.
func TestGatherOptions_LastWriterWins(t *testing.T) {
	require.True(t, gatherOptions(WithNoValidateNaNInf(), WithValidateNaNInf()).validateNaNInf)
	require.False(t, gatherOptions(WithValidateNaNInf(), WithNoValidateNaNInf()).validateNaNInf)
	require.True(t, gatherOptions(WithValidateNaNInf(), nil).validateNaNInf)
}
