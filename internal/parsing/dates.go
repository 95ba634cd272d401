package parsing

import (
	"fmt"
	"strings"
	"time"
)

// yt-dlp's --dateafter format.
const yyyymmdd = "20060102"

// DateAfter returns the YYYYMMDD date 'days' days before now.
func DateAfter(now time.Time, days int) string {
	return now.AddDate(0, 0, -days).Format(yyyymmdd)
}

// HyphenateYyyyMmDd simply hyphenates yyyy-mm-dd date values for display.
func HyphenateYyyyMmDd(d string) string {
	d = strings.ReplaceAll(d, " ", "")
	d = strings.ReplaceAll(d, "-", "")
	if len(d) < 8 {
		return d
	}

	return d[0:4] + "-" + d[4:6] + "-" + d[6:8]
}

// FormatDuration renders d as H:MM:SS, dropping fractional seconds.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}
