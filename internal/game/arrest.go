package game

// ArrestScript is the fixed police sequence played when the fraud-approval
// threshold trips (or the drawer proves too tempting). The caller owns the
// cadence; the steps themselves never vary.
func ArrestScript() []string {
	return []string{
		"sirens outside.",
		"two officers cross the lobby.",
		"OFFICER: \"Step away from the window.\"",
		"your drawer is sealed with red tape.",
		"the cuffs are colder than the vault.",
		"BOOKING COMPLETE — FRAUD, AIDING AND ABETTING.",
	}
}
