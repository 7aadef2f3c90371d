// Package app provides the application context and the edit pipeline for
// sshconf.
//
// # App Context
//
// The App struct holds the dependencies that touch the outside world:
//
//	type App struct {
//	    Stdout  io.Writer     // Formatted config output
//	    Files   Files         // Config file reads and writes
//	    History *audit.Logger // Edits written with --write
//	}
//
// Use New with functional options:
//
//	// Production usage
//	a := app.New()
//
//	// Testing
//	a := app.New(app.WithStdout(&buf), app.WithFiles(fakeFiles))
//
// # Pipeline
//
// Edit runs one load, mutate, format, output cycle:
//
//  1. Validate options (configuration error, exit 4)
//  2. Expand the config path and read it (I/O error, exit 5)
//  3. Parse (parse error, exit 2)
//  4. Find the first matching Host block (host not found, exit 3)
//  5. Rewrite HostName/Port, format with the requested indent
//  6. Print to Stdout, or replace the file atomically with --write
//     and append an event to History
//
// List and Show reuse steps 1 to 3 for read-only commands.
package app
