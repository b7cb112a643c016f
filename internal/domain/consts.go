package domain

// DefaultTimezoneName is used when a user has no timezone role and no other
// zone is configured.
const DefaultTimezoneName = "America/Los_Angeles"

// DefaultTimezoneRoles maps the stock timezone role/group names to IANA zone
// identifiers. Overridable through configuration.
var DefaultTimezoneRoles = map[string]string{
	"PST": "America/Los_Angeles",
	"MST": "America/Denver",
	"CST": "America/Chicago",
	"EST": "America/New_York",
	"IST": "Asia/Kolkata",
}

// DefaultReportTime is the local time at which the nightly report is posted.
const DefaultReportTime = "07:00"
