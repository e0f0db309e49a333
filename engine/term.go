package engine

// TermMonths returns the lease term as a whole number of months:
// (endYear-startYear)*12 + (endMonth-startMonth). Day-of-month is ignored
// by design - a lease from Jan 15 to Mar 10 is 2 months. The caller
// guarantees end > start.
func TermMonths(start, end Date) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}
