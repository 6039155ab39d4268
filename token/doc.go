// Package token provides the character stream and the scanner that
// turns YAML text into a token stream.
package token
