package placeholder

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/happy-hour-mailer/internal/settings"
)

func newTestFiller(seed uint64) *Filler {
	return NewFiller(rand.New(rand.NewPCG(seed, seed+1)))
}

func TestFiller_Fill_NoTokens(t *testing.T) {
	f := newTestFiller(1)
	text := "Plain text with no placeholders,\njust words.\n"

	assert.Equal(t, text, f.Fill(text, MapResolver(map[string]string{"x": "y"})))
}

func TestFiller_Fill_DecisionsAndSettings(t *testing.T) {
	f := newTestFiller(1)
	s := settings.Map(map[string]settings.Value{"time": settings.Scalar("5pm")})

	got := f.Fill("Meet at $location at $time",
		MapResolver(map[string]string{"location": "Cafe"}),
		ValueResolver(s),
	)

	assert.Equal(t, "Meet at Cafe at 5pm", got)
}

func TestFiller_Fill_Fallback(t *testing.T) {
	f := newTestFiller(1)

	got := f.Fill("$missing, then $missing again", ValueResolver(settings.Map(nil)))

	// "$missing," is its own token and also falls back.
	assert.Equal(t, "DERP then DERP again", got)
}

func TestFiller_Fill_ListSharedAcrossOccurrences(t *testing.T) {
	s := settings.Map(map[string]settings.Value{"mood": settings.List("A", "B", "C")})

	for seed := uint64(0); seed < 50; seed++ {
		f := newTestFiller(seed)
		got := f.Fill("$mood and $mood", ValueResolver(s))

		parts := strings.Split(got, " and ")
		require.Len(t, parts, 2)
		assert.Equal(t, parts[0], parts[1])
		assert.Contains(t, []string{"A", "B", "C"}, parts[0])
	}
}

func TestFiller_Fill_ListCoversAlternatives(t *testing.T) {
	s := settings.Map(map[string]settings.Value{"mood": settings.List("A", "B", "C")})
	f := newTestFiller(7)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[f.Fill("$mood", ValueResolver(s))] = true
	}

	assert.Len(t, seen, 3)
}

func TestFiller_Fill_ResolverOrder(t *testing.T) {
	f := newTestFiller(1)
	s := settings.Map(map[string]settings.Value{
		"location": settings.Scalar("from settings"),
		"greeting": settings.Scalar("Hello"),
		"personality": settings.Map(map[string]settings.Value{
			"greeting": settings.Scalar("Yo"),
			"signoff":  settings.Scalar("Cheers"),
		}),
	})

	got := f.Fill("$greeting $location $signoff",
		MapResolver(map[string]string{"location": "Cafe"}),
		ValueResolver(s),
		NestedResolver(s, "personality"),
	)

	assert.Equal(t, "Hello Cafe Cheers", got)
}

func TestFiller_Fill_MapAndNullAreMisses(t *testing.T) {
	f := newTestFiller(1)
	s := settings.Map(map[string]settings.Value{
		"personality": settings.Map(map[string]settings.Value{"x": settings.Scalar("y")}),
		"empty":       {},
		"none":        settings.List(),
	})

	got := f.Fill("$personality $empty $none", ValueResolver(s))

	assert.Equal(t, "DERP DERP DERP", got)
}

func TestFiller_Tokens(t *testing.T) {
	f := newTestFiller(1)

	tokens := f.Tokens("Hi $name, see you at $time. $name $ cost $5")

	assert.Equal(t, []string{"name,", "time.", "name", "5"}, tokens)
}

func TestFiller_Tokens_TrimPunctuation(t *testing.T) {
	f := newTestFiller(1)
	f.TrimPunctuation = true

	tokens := f.Tokens("Hi $name, see you at $time. $name $!")

	assert.Equal(t, []string{"name", "time"}, tokens)
}

func TestFiller_Fill_TrimPunctuation(t *testing.T) {
	f := newTestFiller(1)
	f.TrimPunctuation = true
	s := settings.Map(map[string]settings.Value{"time": settings.Scalar("5pm")})

	assert.Equal(t, "See you at 5pm.", f.Fill("See you at $time.", ValueResolver(s)))
}

func TestFiller_Fill_CustomMarker(t *testing.T) {
	f := newTestFiller(1)
	f.Marker = "%"
	f.Fallback = "?"

	got := f.Fill("cost $5 at %place", MapResolver(map[string]string{"place": "Pub"}))

	assert.Equal(t, "cost $5 at Pub", got)
}
