package htmlquery_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fwojciec/formscrape"
	"github.com/fwojciec/formscrape/htmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReader(t *testing.T) {
	t.Parallel()

	t.Run("parses UTF-8 markup as is", func(t *testing.T) {
		t.Parallel()

		doc, err := htmlquery.ParseReader(strings.NewReader(`<input type="text" value="Café">`))
		require.NoError(t, err)

		inputs := doc.TextInputs()
		require.Len(t, inputs, 1)
		assert.Equal(t, formscrape.String("Café"), inputs[0].Text)
	})

	t.Run("transcodes Latin-1 markup", func(t *testing.T) {
		t.Parallel()

		var b bytes.Buffer
		b.WriteString(`<html><head><title>Pr`)
		b.WriteByte(0xe9) // é
		b.WriteString(`f`)
		b.WriteByte(0xe9)
		b.WriteString(`rences</title></head><body><p>`)
		for i := 0; i < 20; i++ {
			b.WriteString("Le caf")
			b.WriteByte(0xe9)
			b.WriteString(" de la rivi")
			b.WriteByte(0xe8) // è
			b.WriteString("re est tr")
			b.WriteByte(0xe8)
			b.WriteString("s agr")
			b.WriteByte(0xe9)
			b.WriteString("able et les g")
			b.WriteByte(0xe2) // â
			b.WriteString("teaux sont d")
			b.WriteByte(0xe9)
			b.WriteString("licieux. ")
		}
		b.WriteString(`</p><img src="x.png" alt="Caf`)
		b.WriteByte(0xe9)
		b.WriteString(`"></body></html>`)

		doc, err := htmlquery.ParseReader(&b)
		require.NoError(t, err)

		images := doc.Images()
		require.Len(t, images, 1)
		assert.Equal(t, formscrape.String("Café"), images[0].Alt)
	})

	t.Run("empty markup yields an empty document", func(t *testing.T) {
		t.Parallel()

		doc, err := htmlquery.Parse("")

		require.NoError(t, err)
		require.NotNil(t, doc.Root())
		assert.Nil(t, doc.TextInputs())
	})
}
