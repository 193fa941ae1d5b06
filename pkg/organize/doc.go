/*
Package organize implements the core engine that sorts files into category folders.

	+-------------+
	|  Organizer  |
	| (Core Loop) |
	+------+------+
	       |
	+------+------+
	|  Per File   |
	| (Classify,  |
	|  Rename,    |
	|  Resolve,   |
	|  Move)      |
	+-------------+

🎯 Purpose:
- Orchestrates one run over a snapshot of the target directory
- Classifies each file, applies the optional rename pattern, resolves
  destination collisions and moves (or simulates) the file
- Aggregates per-category counts and per-file errors into a RunResult

🔄 Flow:
1. Scan the target once (pkg/scan), splitting off excluded files
2. For each file: categorize (pkg/category), expand the rename pattern
   (pkg/rename), resolve the destination, then move or report
3. Fold each outcome into the RunResult, never aborting on a single file
4. Emit every decision through the status.Reporter side channel

⚡ Key Responsibilities:
- Sequencing: files are processed strictly one at a time, in snapshot
  order, so rename counters and collision checks need no locking
- Dry-run parity: simulate mode takes the same decisions as a real run,
  reserving planned destinations in memory so previews stay accurate
- Error policy: directory and pattern problems abort before any file is
  touched; everything per-file is recorded and skipped

📝 Design Philosophy:
The engine is a pure sequential fold over the snapshot. All presentation
goes through the Reporter interface and all classification lives in its
own package, so the orchestrator stays a readable loop: classify, rename,
resolve, move, record.
*/
package organize
