// Package schemacomment derives comment resolvers from JSON Schema
// property descriptions.
//
// [NewResolver] builds a [go.jacobcolvin.com/yamlkit/comment.Resolver]
// that annotates each mapping key with the description of the matching
// schema property. The key's column, at a fixed indentation step (two
// spaces by default, matching the encoder's convention), determines the
// nesting level, and a running key path selects the property within the
// schema's Properties tree. Keys without a matching property, or whose
// property has no description, receive no comment.
//
// This is the inverse of schema generation from annotated YAML: it takes
// an existing schema and pushes its documentation back into encoded
// output.
//
//	schema := &jsonschema.Schema{
//	    Properties: map[string]*jsonschema.Schema{
//	        "name": {Type: "string", Description: "The name of the person."},
//	    },
//	}
//
//	out, err := comment.Marshal(v, schemacomment.NewResolver(schema))
//
// Keys inside sequences are not annotated; the column of a block-sequence
// entry does not correspond to a property nesting level.
//
// [Config] bridges CLI flags to the package, following the RegisterFlags /
// RegisterCompletions pattern: --schema names a JSON Schema file,
// [Config.NewResolver] loads it and returns the resolver.
package schemacomment
