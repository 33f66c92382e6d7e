// Package constants provides a centralized location for shared values
// used throughout the propsbot application.
package constants

// Attribution comment constants
const (
	// CommentMarker is embedded invisibly in posted attribution
	// comments so reruns update the existing comment instead of
	// posting a duplicate.
	CommentMarker = "<!-- propsbot:attribution -->"

	// ChannelNodeLimit is the per-channel cap on contribution events
	// fetched for a pull request. Pagination beyond this is not
	// attempted.
	ChannelNodeLimit = 100
)
