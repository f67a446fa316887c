package fsutils

import "strconv"

var sizeUnits = [...]string{"KB", "MB", "GB", "TB"}

// GetSizeShortText formats size in binary units rounded to the nearest whole
// unit, e.g. 1536 is "2KB". TB is the largest unit.
func GetSizeShortText(size int64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatInt(size, 10) + "B"
	}
	div, exp := int64(unit), 0
	for exp < len(sizeUnits)-1 && (size+div/2)/div >= unit {
		div *= unit
		exp++
	}
	return strconv.FormatInt((size+div/2)/div, 10) + sizeUnits[exp]
}
