// Package lessons maps lesson numbers to the fixed directories of the
// learning content tree. The index is embedded at build time; navigation
// is read-only filesystem inspection plus one browser-open call.
package lessons
