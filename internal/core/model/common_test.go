package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkersContainFieldNames(t *testing.T) {
	assert.True(t, strings.HasSuffix(MarkerCompletion, FieldCompleted))
	assert.True(t, strings.HasSuffix(MarkerIntensity, FieldLevel))
	assert.NotContains(t, MarkerCompletion, FieldSeparator)
	assert.NotContains(t, MarkerIntensity, FieldSeparator)
}
