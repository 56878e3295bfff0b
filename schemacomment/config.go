package schemacomment

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/yamlkit/comment"
)

// ErrInvalidSchema indicates a schema file that could not be read or
// parsed as a JSON Schema.
var ErrInvalidSchema = errors.New("invalid schema")

// Flags holds CLI flag names for schema comment configuration, allowing
// callers to customize flag names while keeping sensible defaults.
type Flags struct {
	Schema string
	Output string
	Indent string
}

// Config holds CLI flag values for schema comment configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewResolver] to load the schema and
// build a resolver.
type Config struct {
	Flags  Flags
	Schema string
	Output string
	Indent int
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Schema: "schema",
		Output: "output",
		Indent: "indent",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds schema comment flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Schema, c.Flags.Schema, "s", "",
		"JSON Schema file providing property descriptions")
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "-",
		"output file path (- for stdout)")
	flags.IntVar(&c.Indent, c.Flags.Indent, defaultIndent,
		"indentation spaces per nesting level")
}

// RegisterCompletions registers shell completions for schema comment flags
// on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Schema,
		func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return []string{"json"}, cobra.ShellCompDirectiveFilterFileExt
		})
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Schema, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Indent,
		func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		})
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Indent, err)
	}

	return nil
}

// NewResolver loads the configured schema file and returns a resolver
// built from it. See [NewResolver].
func (c *Config) NewResolver() (comment.Resolver, error) {
	schema, err := c.LoadSchema()
	if err != nil {
		return nil, err
	}

	return NewResolver(schema, WithIndent(c.Indent)), nil
}

// LoadSchema reads and parses the configured JSON Schema file.
func (c *Config) LoadSchema() (*jsonschema.Schema, error) {
	if c.Schema == "" {
		return nil, fmt.Errorf("%w: no schema file configured", ErrInvalidSchema)
	}

	data, err := os.ReadFile(c.Schema) //nolint:gosec // Schema path from CLI flag is expected.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	var schema jsonschema.Schema

	err = json.Unmarshal(data, &schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	return &schema, nil
}
