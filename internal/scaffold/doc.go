// Package scaffold generates a new Python package project from embedded
// templates. It powers the "newpack create" command, producing the standard
// file structure (pyproject.toml, README.md, LICENSE, .gitignore, package
// __init__.py) with project metadata substituted into each file.
package scaffold
