// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	var quiet, verbose bytes.Buffer

	q := New(&quiet, false)
	q.Debug("hidden")
	q.Info("shown")

	v := New(&verbose, true)
	v.Debug("details")

	assert.NotContains(t, quiet.String(), "hidden")
	assert.Contains(t, quiet.String(), "shown")
	assert.Contains(t, verbose.String(), "details")
}
