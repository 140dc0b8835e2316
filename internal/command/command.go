package command

// MutatesSchedule reports whether cmd changes the schedule document when applied.
func MutatesSchedule(cmd Command) bool {
	switch cmd.Kind() {
	case KindMoveStart, KindShift, KindShiftAll, KindDistributeChain,
		KindNormativeExtend, KindApplyNormativeProfile, KindShowStandardPlan,
		KindBatchOperations:
		return true
	}
	return false
}

// IsPreview reports whether cmd asks only for a non-committed preview.
func IsPreview(cmd Command) bool {
	switch c := cmd.(type) {
	case ApplyNormativeProfile:
		return c.Mode == ModePreview
	case ShowStandardPlan:
		return c.Mode == ModePreview
	}
	return false
}
