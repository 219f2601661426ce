package blackfriday

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	require.Equal(t, "hello-world", slugify("Hello, World!"))
	require.Equal(t, "cafe", slugify("Café"))
}

func TestHeaderIDFromTextDisambiguates(t *testing.T) {
	doc := newDocument("")
	id1 := headerIDFromText(doc, "Intro", "")
	id2 := headerIDFromText(doc, "Intro", "")
	require.Equal(t, "intro", id1)
	require.Equal(t, "intro-2", id2)
}
