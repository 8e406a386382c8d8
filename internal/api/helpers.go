package api

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/jeebeez/jeebeecard/internal/study"
)

// viewFromValues reads the deck view carried by a request. A missing or
// malformed cursor reads as 0; the deck clamps it afterwards.
func viewFromValues(v url.Values) study.View {
	cursor, _ := strconv.Atoi(v.Get("i"))
	return study.View{
		Cursor:   cursor,
		Face:     study.ParseFace(v.Get("face")),
		Language: study.ParseLanguage(v.Get("lang")),
	}
}

// deckURL is the address of the deck page showing exactly d.
func deckURL(d study.Deck) string {
	q := url.Values{}
	q.Set("level", d.Level)
	q.Set("i", strconv.Itoa(d.Cursor))
	q.Set("face", d.Face.String())
	q.Set("lang", d.Language.String())
	return "/deck?" + q.Encode()
}

// safeReturn accepts only local deck pages as return targets.
func safeReturn(target, fallback string) string {
	if strings.HasPrefix(target, "/deck?") {
		return target
	}
	return fallback
}
