package service

import "strings"

// DefaultUserAgentToken identifies the shell in the user agent.
const DefaultUserAgentToken = "MiniWorld/1.0"

// BuildUserAgent appends the shell token to the engine's native user agent.
// The native identity is kept intact; the token is not appended twice.
func BuildUserAgent(engineUA, token string) string {
	engineUA = strings.TrimSpace(engineUA)
	token = strings.TrimSpace(token)

	switch {
	case token == "":
		return engineUA
	case engineUA == "":
		return token
	case strings.HasSuffix(engineUA, " "+token) || engineUA == token:
		return engineUA
	default:
		return engineUA + " " + token
	}
}
