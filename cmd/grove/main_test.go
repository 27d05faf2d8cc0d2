package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ARTM2000/grove"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const petshopHCL = `
bean "rex" {
  class = "petshop.Dog"
  property "name" { value = "Rex" }
}

bean "alice" {
  class = "petshop.Person"
  property "pet" { ref = "rex" }
}
`

func TestRun_Lint(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeFile(t, "beans.hcl", petshopHCL)

		var out, errOut bytes.Buffer
		err := run(&out, &errOut, []string{"lint", path})
		require.NoError(t, err)
		require.Equal(t, "ok: 2 beans in 1 files\n", out.String())
	})

	t.Run("unresolved reference", func(t *testing.T) {
		path := writeFile(t, "beans.xml", `<beans>
  <bean id="alice" class="Person"><property name="pet" ref="ghost"/></bean>
</beans>`)

		var out, errOut bytes.Buffer
		err := run(&out, &errOut, []string{"lint", path})
		require.ErrorIs(t, err, grove.ErrUnresolvedReference)
		require.Empty(t, out.String())
	})

	t.Run("references across files", func(t *testing.T) {
		dogs := writeFile(t, "dogs.yaml", "beans:\n  - id: rex\n    class: Dog\n")
		people := writeFile(t, "people.xml", `<beans><bean id="alice" class="Person"><property name="pet" ref="rex"/></bean></beans>`)

		var out, errOut bytes.Buffer
		require.NoError(t, run(&out, &errOut, []string{"lint", dogs, people}))
		require.Contains(t, out.String(), "2 beans in 2 files")
	})

	t.Run("requires a file", func(t *testing.T) {
		var out, errOut bytes.Buffer
		require.Error(t, run(&out, &errOut, []string{"lint"}))
	})

	t.Run("env file feeds placeholders", func(t *testing.T) {
		env := writeFile(t, "test.env", "GROVE_CLI_DOG=Rex\n")
		path := writeFile(t, "beans.yaml", "beans:\n  - id: rex\n    class: Dog\n    properties:\n      - {name: name, value: \"${GROVE_CLI_DOG}\"}\n")

		var out, errOut bytes.Buffer
		require.NoError(t, run(&out, &errOut, []string{"describe", "--env-file", env, path}))
		require.Contains(t, out.String(), `"Rex"`)

		out.Reset()
		err := run(&out, &errOut, []string{"lint", path})
		require.Error(t, err)
	})
}

func TestRun_Describe(t *testing.T) {
	path := writeFile(t, "beans.hcl", petshopHCL+`
bean "empty" {
  class = "petshop.Dog"
}
`)

	var out, errOut bytes.Buffer
	require.NoError(t, run(&out, &errOut, []string{"describe", "--log-level", "debug", path}))

	table := out.String()
	require.Contains(t, table, "BEAN")
	require.Contains(t, table, "petshop.Person")
	require.Contains(t, table, `"Rex"`)
	require.Contains(t, table, "ref")
	require.Contains(t, table, "empty")
	require.Contains(t, errOut.String(), "Descriptors loaded.")
}

func TestKindAndText(t *testing.T) {
	v, r := "v", "r"
	tests := []struct {
		p        grove.PropertyDirective
		wantKind string
		wantText string
	}{
		{grove.Literal("a", "x"), "value", `"x"`},
		{grove.Reference("a", "b"), "ref", "b"},
		{grove.PropertyDirective{Name: "a", Value: &v, Ref: &r}, "invalid", ""},
		{grove.PropertyDirective{Name: "a"}, "invalid", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.wantKind, kind(tt.p))
		require.Equal(t, tt.wantText, text(tt.p))
	}
}
