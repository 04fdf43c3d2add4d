// Package bootstrap invokes the external shortgit helper that initializes
// version control and creates a remote repository for a freshly scaffolded
// project, without pushing any commits. The helper sits behind the Runner
// interface so tests can substitute a recording stub instead of spawning
// a real process.
package bootstrap
