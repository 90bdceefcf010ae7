package fileops

import "fmt"

// sizeUnits in ascending order; the report uses the largest unit under
// which the scaled value stays below 1024.
var sizeUnits = []string{"bytes", "KB", "MB", "GB", "TB"}

// formatSize renders a byte count with two-decimal precision, e.g.
// 2048 -> "2.00 KB", 0 -> "0.00 bytes".
func formatSize(bytes int64) string {
	size := float64(bytes)
	for _, unit := range sizeUnits {
		if size < 1024 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.2f PB", size)
}
