//go:build !windows

package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepare(t *testing.T) {
	assert.NoError(t, Prepare())
	assert.Zero(t, CodePage())
}
