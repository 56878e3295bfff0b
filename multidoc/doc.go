// Package multidoc stores and reads multiple YAML documents in a single
// file, separated by "---" lines.
//
// [Append] adds a document to a file, creating the file when it does not
// exist and inserting a blank line and a separator when it does.
// [AppendCommented] does the same through
// [go.jacobcolvin.com/yamlkit/comment], so appended documents can carry
// comments.
//
// [Docs] reads documents back lazily, one at a time, without loading the
// whole file into memory:
//
//	docs, err := multidoc.OpenDocs[Entry]("journal.yaml")
//	defer docs.Close()
//
//	for entry, err := range docs.All() {
//	    if err != nil {
//	        return err
//	    }
//	    // ...
//	}
package multidoc
