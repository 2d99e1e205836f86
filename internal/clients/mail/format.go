package mail

import "time"

func formatUnixDate(ts int64) string {
	if ts <= 0 {
		return "the end of your trial period"
	}
	return time.Unix(ts, 0).UTC().Format("January 2, 2006")
}
