package formscrape_test

import (
	"testing"

	"github.com/fwojciec/formscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComponentKind(t *testing.T) {
	t.Parallel()

	t.Run("accepts every supported kind", func(t *testing.T) {
		t.Parallel()

		for _, k := range formscrape.ComponentKinds() {
			got, err := formscrape.ParseComponentKind(string(k))
			require.NoError(t, err)
			assert.Equal(t, k, got)
		}
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		t.Parallel()

		_, err := formscrape.ParseComponentKind("radio")

		require.Error(t, err)
		assert.Equal(t, formscrape.EINVALID, formscrape.ErrorCode(err))
	})
}

func TestComponentResponse_Len(t *testing.T) {
	t.Parallel()

	t.Run("counts records of the response kind", func(t *testing.T) {
		t.Parallel()

		r := &formscrape.ComponentResponse{
			Kind:   formscrape.KindImage,
			Images: []formscrape.Image{{}, {}},
		}

		assert.Equal(t, 2, r.Len())
	})

	t.Run("nil response has no records", func(t *testing.T) {
		t.Parallel()

		var r *formscrape.ComponentResponse
		assert.Zero(t, r.Len())
	})
}

func TestSnapshot_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *formscrape.Snapshot {
		return &formscrape.Snapshot{
			SourceURL: "https://example.com/form.aspx",
			Kind:      formscrape.KindDataGrid,
			Response:  &formscrape.ComponentResponse{Kind: formscrape.KindDataGrid},
		}
	}

	t.Run("accepts a complete snapshot", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, valid().Validate())
	})

	t.Run("requires source URL", func(t *testing.T) {
		t.Parallel()

		s := valid()
		s.SourceURL = ""
		assert.Equal(t, formscrape.EINVALID, formscrape.ErrorCode(s.Validate()))
	})

	t.Run("requires a known kind", func(t *testing.T) {
		t.Parallel()

		s := valid()
		s.Kind = "radio"
		assert.Equal(t, formscrape.EINVALID, formscrape.ErrorCode(s.Validate()))
	})

	t.Run("requires a response", func(t *testing.T) {
		t.Parallel()

		s := valid()
		s.Response = nil
		assert.Equal(t, formscrape.EINVALID, formscrape.ErrorCode(s.Validate()))
	})
}
