package syslog

// Admit reports whether the level of p is enabled in mask.
// Mask bits above the defined levels never admit anything.
func Admit(p Priority, mask uint32) bool {
	return mask&MaskAll&LogMask(p) != 0
}
