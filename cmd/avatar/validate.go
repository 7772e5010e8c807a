package main

import (
	"fmt"

	"pixel-avatar/internal/profile"
)

// --- validate ---

// runValidate audits every profile in dir. Unknown ids are errors: the avatar
// would render differently from what the user picked. Locked options are
// warnings.
func (c *cli) runValidate(dir string) int {
	all, err := profile.LoadDir(dir)
	if err != nil {
		fmt.Fprintf(c.stderr, "FAIL: %v\n", err)
		return 1
	}

	errors := 0
	for _, p := range all {
		fmt.Fprintf(c.stdout, "Validating %q...\n", p.Name)
		bad := 0
		for _, issue := range profile.Audit(p) {
			if issue.Reason == profile.ReasonUnknown {
				fmt.Fprintf(c.stdout, "  ERROR: %s\n", issue)
				bad++
				continue
			}
			fmt.Fprintf(c.stdout, "  WARN: %s\n", issue)
		}
		if bad == 0 {
			c.printer.Fprintf(c.stdout, "  OK (%d points)\n", p.Points)
		}
		errors += bad
	}

	if errors > 0 {
		fmt.Fprintf(c.stdout, "\n%d error(s) found\n", errors)
		return 1
	}
	fmt.Fprintf(c.stdout, "\nAll %d profiles valid\n", len(all))
	return 0
}
