// Package inspect decides whether a source file declares a UI component and
// runs the OnPush and Signals advisory checks over its text.
//
// All checks are plain substring and regular expression tests over the whole
// file. Nothing is parsed, so matches inside comments or string literals count.
package inspect
