package avatar

// IsLocked reports whether a user with userPoints may not yet select item.
// An item is locked only when it declares a point threshold, is not
// explicitly unlocked, and the user is below the threshold.
func IsLocked(item Option, userPoints int) bool {
	return item.PointsRequired > 0 && !item.Unlocked && userPoints < item.PointsRequired
}

// LockedIDs returns the ids in c that are locked for userPoints, in menu order.
func LockedIDs(c *Catalog[Option], userPoints int) []string {
	var ids []string
	for _, o := range c.entries {
		if IsLocked(o, userPoints) {
			ids = append(ids, o.ID)
		}
	}
	return ids
}
