/*
Package status renders run events for tidydir.

	            +-------------+
	            |   Status    |
	            | (Reporting) |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	| Formatter |           | pterm   |
	|  (Lines)  |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Receives the structured facts of a run (moves, folders, failures)
- Renders one human-readable line per action
- Prints the end-of-run summary by category

🔄 Flow:
1. The organize engine emits events through the Reporter interface
2. A Formatter turns each event into a single line
3. UserReporter prints the line via pterm and mirrors it to zerolog
4. RunFinished renders the sorted category summary

🤝 Interfaces:
- Reporter: receives run events from the engine
- Formatter: formats events as display lines

📝 Design Philosophy:
The engine decides *what* happened; this package decides *how it looks*.
Keeping rendering behind the Reporter interface means the engine stays
silent by default (Discard), the CLI gets pterm output, and tests can
record events without parsing terminal text. Dry-run and real runs flow
through the same code paths, so the preview lines are rendered from the
same facts a real run would produce.
*/
package status
