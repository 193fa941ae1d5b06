/*
Package config manages the run options for tidydir.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |           |           |
	+-----+-----+ +---+----+ +----+----+
	|   YAML    | |  JSON  | |   HCL   |
	+-----------+ +--------+ +---------+

🎯 Purpose:
- Loads the optional .tidydir defaults file
- Validates and normalizes run options (target path, dry-run, pattern)
- Supports multiple config formats, selected by extension

🔄 Flow:
1. The CLI asks Discover (or Load, with --config) for a Config
2. The format-specific parser decodes the bytes strictly
3. Validate expands ~ and fills the default target
4. Flags are overlaid on top by the CLI

📝 Design Philosophy:
Only knobs the CLI also exposes as flags live here: the defaults file is a
convenience, never a second source of behavior. The category table is a
fixed built-in and deliberately has no representation in this package.
Unknown keys are rejected in every format so a typoed option fails loudly
instead of being ignored.
*/
package config
