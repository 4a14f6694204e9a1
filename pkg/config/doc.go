// Package config manages configuration parsing and validation for punctfix.
//
//	            +-------------+
//	            |   Config    |
//	            | (Settings)  |
//	            +------+------+
//	                   |
//	      +------------+------------+
//	      |            |            |
//	+-----+-----+ +----+----+ +-----+-----+
//	|   YAML    | |   HCL   | |   JSON    |
//	|  Parser   | | Parser  | |  Parser   |
//	+-----------+ +---------+ +-----------+
//
// 🎯 Purpose:
// - Decides which files are scanned (include/exclude doublestar patterns)
// - Anchors relative patterns at a root directory
// - Sets how many files are processed in parallel
//
// 🔄 Flow:
// 1. Picks a parser from the file extension
// 2. Decodes the file, rejecting unknown fields
// 3. Resolves root relative to the config file
// 4. Fills defaults and validates patterns
//
// 🔍 Example:
//
//	# .punctfix.yaml
//	include:
//	  - docs/**/*.md
//	exclude:
//	  - docs/legacy/**
//	jobs: 4
//
//	# .punctfix.hcl
//	root    = env.DOCS_ROOT
//	include = ["**/*.md", "**/*.mdx"]
//
// A missing default file is not an error; LoadOrDefault returns Default.
package config
