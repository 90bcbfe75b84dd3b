package sift

var (
	VERSION = "dev"
	COMMIT  = "unknown"
)
