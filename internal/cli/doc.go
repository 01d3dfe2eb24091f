// SPDX-License-Identifier: MIT

// Package cli implements the roots command line: argument normalization,
// the cobra command tree, and all text output. The root-finding packages
// perform no I/O; everything printed comes from here.
package cli
