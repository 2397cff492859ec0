// Package skins resolves skin and cape URLs for a player. Lookups never fail
// the caller: a URL that cannot be produced is returned as "".
package skins

import (
	"context"
	"strings"
)

type Lookup interface {
	Skin(ctx context.Context, userUUID, userName string) string
	Cape(ctx context.Context, userUUID, userName string) string
}

// Expand substitutes {uuid}, {uuid_nodash} and {username} in tmpl.
func Expand(tmpl, userUUID, userName string) string {
	if tmpl == "" {
		return ""
	}
	r := strings.NewReplacer(
		"{uuid}", userUUID,
		"{uuid_nodash}", strings.ReplaceAll(userUUID, "-", ""),
		"{username}", userName,
	)
	return r.Replace(tmpl)
}

// TemplateLookup renders URLs from static templates, e.g.
// "https://cdn.example.com/skins/{username}.png". An empty template yields "".
type TemplateLookup struct {
	SkinURL string
	CapeURL string
}

func (l TemplateLookup) Skin(_ context.Context, userUUID, userName string) string {
	return Expand(l.SkinURL, userUUID, userName)
}

func (l TemplateLookup) Cape(_ context.Context, userUUID, userName string) string {
	return Expand(l.CapeURL, userUUID, userName)
}
