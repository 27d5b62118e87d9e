package loader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/bmerge/internal/profile/loader"
)

func TestEmbedded(t *testing.T) {
	t.Parallel()

	profileData := []byte("name: terraform\n")
	l := loader.Embedded("terraform.yaml", profileData)

	result, err := l.Load(t.Context(), "main.tf")
	require.NoError(t, err)
	assert.Equal(t, profileData, result.Data)
	assert.Equal(t, "terraform.yaml", result.URL)
}
