// Package builder shells out to the externally authored build scripts
// (build.sh / build.bat) inside a project directory. It streams script
// output to the console and maps the script's exit status to a pass/fail
// result.
package builder
