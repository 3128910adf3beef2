// Package shell runs the interactive dome calculator loop.
//
// Each round prompts for a diameter, a material and a thickness, converts
// the answers into a DomeSpec and prints the result or the error. Bad input
// never ends the loop; only the exit word or end of input does.
package shell
