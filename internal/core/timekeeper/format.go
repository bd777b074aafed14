package timekeeper

import "fmt"

// FormatRemaining renders seconds as m:ss the way the tray shows them.
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
