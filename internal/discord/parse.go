package discord

import "regexp"

var (
	messageLinkPattern = regexp.MustCompile(`^https://(?:ptb\.|canary\.)?discord(?:app)?\.com/channels/(\d+)/(\d+)/(\d+)$`)
	snowflakePattern   = regexp.MustCompile(`^\d{15,20}$`)
)

// parseMessageRef extracts a message ID from either a full message link or a
// raw snowflake. Returns ok=false when the input is neither.
func parseMessageRef(input string) (messageID string, ok bool) {
	if m := messageLinkPattern.FindStringSubmatch(input); m != nil {
		return m[3], true
	}
	if snowflakePattern.MatchString(input) {
		return input, true
	}
	return "", false
}
