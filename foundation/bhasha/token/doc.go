// Package token defines source positions, token kinds, tokens and the
// bilingual keyword table of the Bhasha language.
package token
