package pub

var monthNames = []string{
	"",
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthAbbrs = []string{
	"",
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthName returns the full English month name ("September"), or "" when
// month is outside 1-12.
func MonthName(month int) string {
	if month >= 1 && month <= 12 {
		return monthNames[month]
	}
	return ""
}

// MonthAbbr returns the three-letter month abbreviation ("Sep"), or "" when
// month is outside 1-12.
func MonthAbbr(month int) string {
	if month >= 1 && month <= 12 {
		return monthAbbrs[month]
	}
	return ""
}
