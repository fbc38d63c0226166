// Package ignorefile resolves, inspects, and appends to the ignore file that
// receives the default block.
//
// The three operations run in sequence for a single invocation:
//
//	path, err := ignorefile.Resolve(dest, ignorefile.DefaultName)
//	present, err := ignorefile.HasDefaults(path, defaults.Marker)
//	if !present {
//		err = ignorefile.Append(path, tmpl.Content)
//	}
//
// None of them parse or rewrite existing rules. Resolve only stats the
// filesystem, HasDefaults reads the file once, and Append writes at the end.
package ignorefile
