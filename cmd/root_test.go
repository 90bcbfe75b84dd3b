package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	_, err = root.ExecuteC()
	return buf.String(), err
}

func writeFile(t *testing.T, name string, content string) string {
	filename := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(filename, []byte(content), 0o644))
	return filename
}

func TestCMD(t *testing.T) {
	output, err := executeCommand(NewRootCmd(), "")
	assert.Nil(t, err)
	assert.NotNil(t, output)
}

func TestVersion(t *testing.T) {
	output, err := executeCommand(NewRootCmd(), "version")
	assert.Nil(t, err)
	assert.Equal(t, "sift dev (unknown)\n", output)
}

func TestInitConfig(t *testing.T) {
	filename := writeFile(t, "sift.yml", `
server:
  listen: 127.0.0.1:9000
routes:
  - path: /users
    schema:
      GET: {}
`)
	cfg, err := initConfig(filename)
	assert.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Listen)

	_, err = initConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorContains(t, err, "could not load configuration")

	invalid := writeFile(t, "invalid.yml", `
log:
  level: loud
`)
	_, err = initConfig(invalid)
	assert.EqualError(t, err, "invalid configuration: invalid level: loud")

	invalidRoute := writeFile(t, "route.yml", `
routes:
  - path: users
    schema:
      GET: {}
`)
	_, err = initConfig(invalidRoute)
	assert.EqualError(t, err, `invalid configuration: validation failed: {"routes":{"0":{"path":"value must start with '/'"}}}`)
}

const schemaYAML = `
GET:
  params: [name, age]
POST:
  headers: [Authorization]
  body: [name, age]
`

func TestCheck(t *testing.T) {
	schema := writeFile(t, "schema.yml", schemaYAML)

	t.Run("accepted", func(t *testing.T) {
		output, err := executeCommand(NewRootCmd(), "check", "--schema", schema,
			"-X", "POST",
			"-H", "Authorization: Bearer token",
			"-d", `{"name":"Satya","age":98,"extra":true}`,
			"https://example.com/users")
		assert.NoError(t, err)
		assert.JSONEq(t, `{"body":{"name":"Satya","age":98}}`, output)
	})

	t.Run("accepted with body file", func(t *testing.T) {
		body := writeFile(t, "body.json", `{"name":"Satya","age":98}`)
		output, err := executeCommand(NewRootCmd(), "check", "-s", schema,
			"-X", "POST", "-H", "authorization: x", "-d", "@"+body,
			"https://example.com/users")
		assert.NoError(t, err)
		assert.JSONEq(t, `{"body":{"name":"Satya","age":98}}`, output)
	})

	t.Run("rejected", func(t *testing.T) {
		output, err := executeCommand(NewRootCmd(), "check", "--schema", schema,
			"https://example.com/users?name=Satya")
		assert.EqualError(t, err, "request rejected with status 400")
		assert.Contains(t, output, `"message": "param 'age' is required to process the request"`)
		assert.Contains(t, output, `"kind": "missing_param"`)
	})

	t.Run("method not allowed", func(t *testing.T) {
		_, err := executeCommand(NewRootCmd(), "check", "--schema", schema, "-X", "PATCH", "https://example.com")
		assert.EqualError(t, err, "request rejected with status 405")
	})

	t.Run("invalid header", func(t *testing.T) {
		_, err := executeCommand(NewRootCmd(), "check", "--schema", schema, "-H", "nocolon", "https://example.com")
		assert.EqualError(t, err, "invalid header 'nocolon', expected 'Name: value'")
	})

	t.Run("invalid schema", func(t *testing.T) {
		invalid := writeFile(t, "invalid.yml", "GET:\n  headers: ['']\n")
		_, err := executeCommand(NewRootCmd(), "check", "--schema", invalid, "https://example.com")
		assert.EqualError(t, err, `invalid schema: validation failed: {"schema":{"GET":{"headers":{"0":"required field missing"}}}}`)
	})

	t.Run("schema under key", func(t *testing.T) {
		nested := writeFile(t, "nested.yml", "users:\n  DELETE:\n    params: [id]\norders:\n  GET: {}\n")
		output, err := executeCommand(NewRootCmd(), "check", "--schema", nested, "--key", "users",
			"-X", "DELETE", "https://example.com/users?id=1")
		assert.NoError(t, err)
		assert.JSONEq(t, `{}`, output)

		_, err = executeCommand(NewRootCmd(), "check", "--schema", nested, "-k", "orders",
			"-X", "DELETE", "https://example.com/orders")
		assert.EqualError(t, err, "request rejected with status 405")

		_, err = executeCommand(NewRootCmd(), "check", "--schema", nested, "-k", "missing", "https://example.com")
		assert.EqualError(t, err, `invalid schema: validation failed: {"schema":"required field missing"}`)
	})

	t.Run("missing schema flag", func(t *testing.T) {
		_, err := executeCommand(NewRootCmd(), "check", "https://example.com")
		assert.Error(t, err)
	})
}
