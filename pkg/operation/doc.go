/*
Package operation runs punctuation checks and fixes over files.

	+-------------+
	|   Runner    |
	| (jobs, ctx) |
	+------+------+
	       |
	+------+------+
	|  Operation  |
	| check / fix |
	+------+------+
	       |
	+------+------+     +-------------+
	|   punct     |     |   status    |
	|  (Scanner)  |     | (FileResult)|
	+-------------+     +-------------+

🎯 Purpose:
  - check: reads a file and reports every full-width punctuation match
  - fix: reads a file and rewrites it when anything matched
  - Runner: applies an operation to many files, sequentially or with a
    bounded number of goroutines, and aggregates a Summary

🔄 Flow:
 1. Runner receives an ordered file list
 2. Each file is read once; clean files stop after the existence test
 3. check locates matches; fix folds the rules and writes once
 4. Results are stored at their input index so output order never depends
    on scheduling
 5. Report.Verdict maps the summary to the run outcome

⚡ Error policy:
- I/O errors are recorded on the file result and processing continues
- A check with matches fails only after every file has been processed
- Fix never fails because of matches
*/
package operation
