package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/ker0olos/sift/config/modules"
	"github.com/ker0olos/sift/config/providers"
	"github.com/ker0olos/sift/pkg/validation"
	"github.com/ker0olos/sift/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func loadSchema(filename string, key string) (validation.Schema, error) {
	var schema validation.Schema
	if err := providers.NewYAMLProvider(filename, nil).WithKey(key).Load(&schema); err != nil {
		return nil, errors.Wrap(err, "could not load schema")
	}
	if err := utils.Validate(&modules.RouteConfig{Path: "/", Schema: schema}); err != nil {
		return nil, wrapValidateError(err, "invalid schema")
	}
	return schema, nil
}

func parseHeader(raw string) (string, string, error) {
	name, value, ok := strings.Cut(raw, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", errors.Errorf("invalid header '%s', expected 'Name: value'", raw)
	}
	return name, strings.TrimSpace(value), nil
}

func requestBody(data string) (io.Reader, error) {
	if data == "" {
		return nil, nil
	}
	if filename, ok := strings.CutPrefix(data, "@"); ok {
		b, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(b), nil
	}
	return strings.NewReader(data), nil
}

func newCheckCmd() *cobra.Command {
	var (
		schemaFile string
		schemaKey  string
		method     string
		headers    []string
		data       string
	)

	check := &cobra.Command{
		Use:   "check URL",
		Short: "Validate a request against a schema file",
		Long: `Build a request from the flags, validate it against the schema file and print the result.
The command fails when the request is rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := loadSchema(schemaFile, schemaKey)
			if err != nil {
				return err
			}

			body, err := requestBody(data)
			if err != nil {
				return errors.Wrap(err, "could not read body")
			}

			req, err := http.NewRequestWithContext(cmd.Context(), method, args[0], body)
			if err != nil {
				return errors.Wrap(err, "invalid request")
			}
			for _, raw := range headers {
				name, value, err := parseHeader(raw)
				if err != nil {
					return err
				}
				if strings.EqualFold(name, "Host") {
					req.Host = value
					continue
				}
				req.Header.Add(name, value)
			}

			result, err := validation.ValidateRequest(req, schema)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(result); err != nil {
				return err
			}

			if !result.Valid() {
				return errors.Errorf("request rejected with status %d", result.Error.Status)
			}
			return nil
		},
	}

	check.Flags().StringVarP(&schemaFile, "schema", "s", "", "The schema filename")
	check.Flags().StringVarP(&schemaKey, "key", "k", "", "Read the schema under this top-level key of the schema file")
	check.Flags().StringVarP(&method, "request", "X", http.MethodGet, "The request method")
	check.Flags().StringArrayVarP(&headers, "header", "H", nil, "A request header, 'Name: value'")
	check.Flags().StringVarP(&data, "data", "d", "", "The request body, or @filename")
	_ = check.MarkFlagRequired("schema")

	return check
}
