// Package render formats dome results for the console.
//
// Formats
//
//   - text  one line: material, diameter, thickness, area and weight
//   - json  indented JSON object
//   - yaml  YAML mapping
package render
