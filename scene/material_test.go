package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKindRoundTrip(t *testing.T) {
	for _, k := range ObjectKinds {
		got, err := ParseObjectKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseObjectKind("Teapot")
	assert.Error(t, err)
}

func TestObjectKindNext(t *testing.T) {
	assert.Equal(t, Cube, Sphere.Next(1))
	assert.Equal(t, Sphere, Cylinder.Next(1))
	assert.Equal(t, Cylinder, Sphere.Next(-1))
}

func TestSetShininess(t *testing.T) {
	m := DefaultMaterial()
	m.SetShininess(0)
	assert.Equal(t, float32(MinShininess), m.Shininess)
	m.SetShininess(500)
	assert.Equal(t, float32(MaxShininess), m.Shininess)
}
