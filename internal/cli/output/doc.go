// Package output renders command results for teeline-cli.
//
//   - formatter.go: Formatter interface, format parsing and Printer
//   - table.go: aligned tables built from structs, slices and maps
//   - json.go: indented JSON
//   - yaml.go: YAML that follows json field names
//
// Struct fields tagged `table:"wide"` are shown only in wide mode and
// `table:"-"` hides a field from tables entirely.
package output
