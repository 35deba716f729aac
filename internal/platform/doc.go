// Package platform isolates the OS-specific details of the hub: build
// script naming and invocation on the Unix and Windows families, and
// permission handling that degrades to a no-op where the OS has no
// Unix-style mode bits.
package platform
