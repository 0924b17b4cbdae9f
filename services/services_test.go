package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Construction against a never-connected database handle must not crash;
// only the operations themselves may fail.
func TestConstructorsTolerateMissingDatabase(t *testing.T) {
	require.NotPanics(t, func() {
		assert.NotNil(t, NewProjectService(nil))
		assert.NotNil(t, NewPersonalInfoService(nil))
		assert.NotNil(t, NewContactService(nil))
		assert.NotNil(t, NewSkillService(nil))
	})
}
