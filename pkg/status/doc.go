/*
Package status models the outcome of scanning files and stores fixes.

	            +-------------+
	            |   Status    |
	            |  (Results)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+------+
	|   Files   |           | Formatter |
	| (Storage) |           |  (UI/UX)  |
	+-----------+           +-----------+

🎯 Purpose:
- Classifies each file as clean, fixed, errored or failed
- Aggregates results into a Summary the CLI turns into an exit code
- Rewrites fixed files atomically (temp file + rename)
- Formats per-file and summary messages

📝 Notes:
A file is either fully rewritten or left untouched; there is no partial fix.
Summary.HasViolations is what makes `punctfix check` fail.
*/
package status
