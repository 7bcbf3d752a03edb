/*
Package operation implements the directory-level mutation operations.

	+-------------+
	|  Operation  |
	| (Core Logic)|
	+------+------+
	       |
	+------+------+
	|   Mutate    |
	| (Per File)  |
	+------+------+

🎯 Purpose:
- Walks the eligible files under a root directory
- Applies the single-file mutator to each one
- Aggregates the paths that actually changed into a ChangeSet
- Records exactly one history entry per completed operation

🔄 Flow:
1. Enumerate eligible files via the walker (stable, lexical order)
2. Replace or delete the target substring in each file
3. Collect changed paths; log failed files distinctly without aborting
4. Append one history entry summarizing the whole operation

⚡ Key Responsibilities:
- Batch orchestration over single-file mutations
- Eligible-file selection via glob patterns
- Failure isolation: one bad file never stops the batch

🤝 Interfaces:
- Mutator: applies the literal substring operation to one file
- History: caller-owned append-only log of completed operations

📝 Design Philosophy:
Operations are all-or-nothing per file: a file's content is either fully
old or fully new. An I/O failure mid-write can leave that one file in an
undefined state, which is surfaced as a failed result rather than masked.
The batch itself always runs to completion; the worst case is an empty or
partial ChangeSet.
*/
package operation
