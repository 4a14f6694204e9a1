/*
Package punct is the punctuation-normalization engine behind punctfix.

	      +-----------+
	      |   Table   |
	      | (Rules)   |
	      +-----+-----+
	            |
	   +--------+--------+
	   |                 |
	+--+-------+   +-----+----+
	| Combined |   |  Rules   |
	| Matcher  |   | in order |
	+--+-------+   +-----+----+
	   |                 |
	HasMatch       Fix / Locate

🎯 Purpose:
- Declares the fixed set of full-width to half-width substitutions
- Tests a block of text for any full-width punctuation in one pass
- Rewrites text by folding each rule over the running result
- Reports 1-based line/column coordinates for every occurrence

📝 Notes:
Columns are counted in runes, not bytes, so a match after CJK text reports
the position a reader sees in an editor.

The ellipsis rule accepts one or two consecutive "…" glyphs and emits a
single "...". A pattern written as `…{1, 2}` (with a space) would not be a
repetition at all: RE2 reads the braces literally, so such a rule only fires
on the text "…{1, 2}". See TestEllipsisQuantifier.
*/
package punct
