// Package comment injects comments into YAML output as it is encoded,
// without modifying or reimplementing the encoder.
//
// It works by wrapping the encoder's destination [io.Writer] in a [Writer]
// that buffers output line by line, scans each completed line for something
// that looks like a mapping key, and asks a caller-supplied [Resolver]
// whether that key should receive a comment. Comment lines are emitted
// immediately before the key line, indented to the key's column, and the
// original line is then forwarded untouched. Output for which the resolver
// returns nothing passes through byte-for-byte.
//
// # Limitations
//
// Key detection is a lexical heuristic over individual lines, not a YAML
// parser. Quoted key names, escape sequences, flow-style mappings, and
// multi-line scalars are not handled; quoted keys containing ":" or "#" may
// be mis-bounded. Comments are never placed inside sequences of scalars.
// These are accepted trade-offs of staying independent from the encoder's
// internals; see [ScanKey] for the exact rules.
//
// # Basic Usage
//
//	type Person struct {
//	    Name string `yaml:"name"`
//	    Age  int    `yaml:"age"`
//	}
//
//	out, err := comment.Marshal(Person{Name: "John Doe", Age: 30},
//	    func(key comment.KeyData) (string, bool) {
//	        switch key.Text {
//	        case "name":
//	            return "The name of the person.", true
//	        case "age":
//	            return "The age of the person.\nIn years.", true
//	        }
//
//	        return "", false
//	    })
//
// produces:
//
//	# The name of the person.
//	name: John Doe
//	# The age of the person.
//	# In years.
//	age: 30
//
// For streaming output, wrap any destination directly:
//
//	cw := comment.NewWriter(dst, resolve)
//	err := yaml.NewEncoder(cw).Encode(v)
//	flushErr := cw.Flush()
package comment
