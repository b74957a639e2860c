package helpers

import (
	"fmt"
	"net/url"
	"strings"
)

// AvatarURL builds a generated-avatar URL for members without a profile
// picture. The member's initials are rendered by the avatar service.
func AvatarURL(baseURL, name string) string {
	base := strings.TrimRight(baseURL, "/")
	return fmt.Sprintf("%s/?name=%s&background=random", base, url.QueryEscape(name))
}

// ResolveProfilePic returns the stored picture when present, otherwise a
// generated avatar for the given name.
func ResolveProfilePic(stored, avatarBaseURL, name string) string {
	if strings.TrimSpace(stored) != "" {
		return stored
	}
	return AvatarURL(avatarBaseURL, name)
}
