package utils

import "time"

func DurationS(seconds int64) time.Duration {
	return time.Duration(seconds) * time.Second
}
