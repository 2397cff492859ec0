package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

var now = time.Now

type property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// gameProfile is the authlib profile document.
type gameProfile struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Properties []property `json:"properties"`
}

type textureURL struct {
	URL string `json:"url"`
}

type texturesValue struct {
	Timestamp   int64                 `json:"timestamp"`
	ProfileID   string                `json:"profileId"`
	ProfileName string                `json:"profileName"`
	Textures    map[string]textureURL `json:"textures"`
}

type profileRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// undashed renders a UUID in the 32 hex digit form clients use.
func undashed(id string) string {
	return strings.ReplaceAll(id, "-", "")
}

// canonicalUUID accepts both the dashed and undashed forms and returns the
// dashed one stored by the backend. Anything unparsable is passed through.
func canonicalUUID(id string) string {
	u, err := uuid.Parse(id)
	if err != nil {
		return id
	}
	return u.String()
}

func newGameProfile(userUUID, userName, skinURL, capeURL string) (gameProfile, error) {
	id := undashed(userUUID)

	tex := make(map[string]textureURL, 2)
	if skinURL != "" {
		tex["SKIN"] = textureURL{URL: skinURL}
	}
	if capeURL != "" {
		tex["CAPE"] = textureURL{URL: capeURL}
	}

	raw, err := json.Marshal(texturesValue{
		Timestamp:   now().UnixMilli(),
		ProfileID:   id,
		ProfileName: userName,
		Textures:    tex,
	})
	if err != nil {
		return gameProfile{}, err
	}

	return gameProfile{
		ID:   id,
		Name: userName,
		Properties: []property{
			{Name: "textures", Value: base64.StdEncoding.EncodeToString(raw)},
		},
	}, nil
}
