package syslog

import (
	"strconv"
	"strings"
)

// Priority is a facility and a level combined with bitwise OR
type Priority int

// levelNames maps level codes to their syslog names
var levelNames = [numLevels]string{
	"emerg", "alert", "crit", "err", "warning", "notice", "info", "debug",
}

// facilityNames maps facility codes to their syslog names
var facilityNames = map[Priority]string{
	FacilityKern:     "kern",
	FacilityUser:     "user",
	FacilityMail:     "mail",
	FacilityDaemon:   "daemon",
	FacilityAuth:     "auth",
	FacilitySyslog:   "syslog",
	FacilityLpr:      "lpr",
	FacilityNews:     "news",
	FacilityUucp:     "uucp",
	FacilityCron:     "cron",
	FacilityAuthPriv: "authpriv",
	FacilityFtp:      "ftp",
	FacilityLocal0:   "local0",
	FacilityLocal1:   "local1",
	FacilityLocal2:   "local2",
	FacilityLocal3:   "local3",
	FacilityLocal4:   "local4",
	FacilityLocal5:   "local5",
	FacilityLocal6:   "local6",
	FacilityLocal7:   "local7",
}

// levelAliases accepts the common alternate spellings
var levelAliases = map[string]Priority{
	"panic": LevelEmerg,
	"error": LevelErr,
	"warn":  LevelWarning,
}

// MakePriority combines a facility and a level
func MakePriority(facility, level Priority) Priority {
	return facility&^levelMask | level&levelMask
}

// Level returns the level field, the only part tested against the mask
func (p Priority) Level() Priority {
	return p & levelMask
}

// Facility returns the facility field, still shifted
func (p Priority) Facility() Priority {
	return p &^ levelMask
}

// String renders the priority as "facility.level"
func (p Priority) String() string {
	level := levelNames[p.Level()]
	if facility, ok := facilityNames[p.Facility()]; ok {
		return facility + "." + level
	}
	return "facility(" + strconv.Itoa(int(p.Facility()>>facilityShift)) + ")." + level
}

// LogMask returns the mask bit for a single level
func LogMask(level Priority) uint32 {
	return 1 << uint(level.Level())
}

// LogUpTo returns the mask for all levels up to and including level
func LogUpTo(level Priority) uint32 {
	return 1<<(uint(level.Level())+1) - 1
}

// ParseLevel converts a level name to its code
func ParseLevel(name string) (Priority, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range levelNames {
		if n == name {
			return Priority(i), nil
		}
	}
	if level, ok := levelAliases[name]; ok {
		return level, nil
	}
	return 0, fmtErrorf("unknown level name: '%s'", name)
}

// ParseFacility converts a facility name to its shifted code
func ParseFacility(name string) (Priority, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for code, n := range facilityNames {
		if n == name {
			return code, nil
		}
	}
	return 0, fmtErrorf("unknown facility name: '%s'", name)
}

// ParsePriority accepts "level" or "facility.level"
func ParsePriority(s string) (Priority, error) {
	facilityName, levelName, found := strings.Cut(strings.TrimSpace(s), ".")
	if !found {
		return ParseLevel(facilityName)
	}

	facility, err := ParseFacility(facilityName)
	if err != nil {
		return 0, err
	}
	level, err := ParseLevel(levelName)
	if err != nil {
		return 0, err
	}
	return MakePriority(facility, level), nil
}
