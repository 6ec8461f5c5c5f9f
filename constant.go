// FILE: lixenwraith/syslog/constant.go
package syslog

// Priority levels, lowest value is most severe
const (
	LevelEmerg   Priority = 0 // System is unusable
	LevelAlert   Priority = 1 // Action must be taken immediately
	LevelCrit    Priority = 2 // Critical conditions
	LevelErr     Priority = 3 // Error conditions
	LevelWarning Priority = 4 // Warning conditions
	LevelNotice  Priority = 5 // Normal, but significant, condition
	LevelInfo    Priority = 6 // Informational message
	LevelDebug   Priority = 7 // Debug-level message
)

// Facilities, already shifted into the facility field
const (
	FacilityKern     Priority = 0 << facilityShift
	FacilityUser     Priority = 1 << facilityShift
	FacilityMail     Priority = 2 << facilityShift
	FacilityDaemon   Priority = 3 << facilityShift
	FacilityAuth     Priority = 4 << facilityShift
	FacilitySyslog   Priority = 5 << facilityShift
	FacilityLpr      Priority = 6 << facilityShift
	FacilityNews     Priority = 7 << facilityShift
	FacilityUucp     Priority = 8 << facilityShift
	FacilityCron     Priority = 9 << facilityShift
	FacilityAuthPriv Priority = 10 << facilityShift
	FacilityFtp      Priority = 11 << facilityShift
	FacilityLocal0   Priority = 16 << facilityShift
	FacilityLocal1   Priority = 17 << facilityShift
	FacilityLocal2   Priority = 18 << facilityShift
	FacilityLocal3   Priority = 19 << facilityShift
	FacilityLocal4   Priority = 20 << facilityShift
	FacilityLocal5   Priority = 21 << facilityShift
	FacilityLocal6   Priority = 22 << facilityShift
	FacilityLocal7   Priority = 23 << facilityShift
)

// Priority field layout
const (
	levelBits     = 3
	facilityShift = levelBits
	levelMask     = Priority(1<<levelBits - 1)
	numLevels     = 8
)

// MaskAll enables every defined level
const MaskAll uint32 = 1<<numLevels - 1

// Timestamp prefix sizing
const (
	// "[" + up to 19 digit seconds + "." + up to 16 digit micros + "]"
	maxTimestampPrefix = 1 + 19 + 1 + 16 + 1
	microDigits        = 6
)
