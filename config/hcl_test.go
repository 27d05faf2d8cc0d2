package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ARTM2000/grove"
)

func TestLoadHCL(t *testing.T) {
	t.Parallel()

	t.Run("env variables and non-string values", func(t *testing.T) {
		t.Parallel()
		src := `
bean "kennel" {
  class = "Kennel"
  property "path" { value = "${env.HOME}/dogs" }
  property "open" { value = true }
  property "ratio" { value = 0.5 }
}
`
		got, err := LoadHCL("kennel.hcl", []byte(src), map[string]string{"HOME": "/srv"})
		require.NoError(t, err)
		require.Equal(t, []grove.BeanDescriptor{
			{ID: "kennel", Class: "Kennel", Properties: []grove.PropertyDirective{
				grove.Literal("path", "/srv/dogs"),
				grove.Literal("open", "true"),
				grove.Literal("ratio", "0.5"),
			}},
		}, got)
	})

	t.Run("property without value or ref", func(t *testing.T) {
		t.Parallel()
		got, err := LoadHCL("a.hcl", []byte(`bean "a" {
  class = "Dog"
  property "name" {}
}`), nil)
		require.NoError(t, err)
		require.Nil(t, got[0].Properties[0].Value)
		require.Nil(t, got[0].Properties[0].Ref)
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()
		_, err := LoadHCL("bad.hcl", []byte(`bean "a" {`), nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse HCL file bad.hcl")
	})

	t.Run("missing class", func(t *testing.T) {
		t.Parallel()
		_, err := LoadHCL("a.hcl", []byte(`bean "a" {}`), nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to decode HCL file a.hcl")
	})

	t.Run("unknown block", func(t *testing.T) {
		t.Parallel()
		_, err := LoadHCL("a.hcl", []byte(`service "a" {}`), nil)
		require.Error(t, err)
	})

	t.Run("undefined variable", func(t *testing.T) {
		t.Parallel()
		_, err := LoadHCL("a.hcl", []byte(`bean "a" {
  class = "Dog"
  property "name" { value = env.MISSING }
}`), nil)
		require.Error(t, err)
	})
}
