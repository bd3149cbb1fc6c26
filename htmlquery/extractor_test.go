package htmlquery_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/formscrape"
	"github.com/fwojciec/formscrape/htmlquery"
	"github.com/fwojciec/formscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const formPage = `<html><body>
<form id="form1" method="post" action="./Search.aspx">
	<input type="hidden" name="__VIEWSTATE" id="__VIEWSTATE" value="abc123">
	<input type="text" id="txtName" name="txtName" value="">
	<input type="checkbox" id="chkActive" checked><label>Active</label>
	<select id="ddlType"><option value="1">One</option></select>
	<a id="lnkSearch" href="javascript:__doPostBack('lnkSearch','')">Search</a>
	<img src="logo.png" alt="Logo">
	<table id="gv"><tr><td>1</td></tr></table>
</form>
</body></html>`

func TestExtractor_ExtractComponents(t *testing.T) {
	t.Parallel()

	t.Run("populates only the requested kind", func(t *testing.T) {
		t.Parallel()

		e := htmlquery.NewExtractor()

		for _, kind := range formscrape.ComponentKinds() {
			resp, err := e.ExtractComponents(formPage, kind)
			require.NoError(t, err, "kind %s", kind)
			require.NotNil(t, resp)

			assert.Equal(t, kind, resp.Kind)
			assert.Equal(t, 1, resp.Len(), "kind %s", kind)
			assert.Equal(t, kind == formscrape.KindInputText, resp.InputTexts != nil)
			assert.Equal(t, kind == formscrape.KindInputHidden, resp.InputHidden != nil)
			assert.Equal(t, kind == formscrape.KindInputCheckbox, resp.Checkboxes != nil)
			assert.Equal(t, kind == formscrape.KindComboBox, resp.ComboBoxes != nil)
			assert.Equal(t, kind == formscrape.KindDataGrid, resp.Grids != nil)
			assert.Equal(t, kind == formscrape.KindLinkButton, resp.LinkButtons != nil)
			assert.Equal(t, kind == formscrape.KindImage, resp.Images != nil)
		}
	})

	t.Run("returns no response for an unknown kind", func(t *testing.T) {
		t.Parallel()

		e := htmlquery.NewExtractor()

		resp, err := e.ExtractComponents(formPage, "radio")

		require.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, formscrape.EINVALID, formscrape.ErrorCode(err))
	})

	t.Run("leaves the field nil when nothing matched", func(t *testing.T) {
		t.Parallel()

		e := htmlquery.NewExtractor()

		resp, err := e.ExtractComponents(`<p>no forms</p>`, formscrape.KindComboBox)

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Nil(t, resp.ComboBoxes)
		assert.Zero(t, resp.Len())
	})

	t.Run("empty markup is an empty result, not an error", func(t *testing.T) {
		t.Parallel()

		e := htmlquery.NewExtractor()

		resp, err := e.ExtractComponents("", formscrape.KindImage)

		require.NoError(t, err)
		assert.Nil(t, resp.Images)
	})

	t.Run("runs the sanitizer before parsing", func(t *testing.T) {
		t.Parallel()

		var seen string
		sanitizer := &mock.Sanitizer{
			SanitizeFn: func(html string) (string, error) {
				seen = html
				return `<img src="clean.png">`, nil
			},
		}
		e := htmlquery.NewExtractor(htmlquery.WithSanitizer(sanitizer))

		resp, err := e.ExtractComponents(formPage, formscrape.KindImage)

		require.NoError(t, err)
		assert.Equal(t, formPage, seen)
		require.Len(t, resp.Images, 1)
		assert.Equal(t, formscrape.String("clean.png"), resp.Images[0].Src)
	})

	t.Run("propagates sanitizer errors", func(t *testing.T) {
		t.Parallel()

		sanitizer := &mock.Sanitizer{
			SanitizeFn: func(string) (string, error) {
				return "", errors.New("sanitize failed")
			},
		}
		e := htmlquery.NewExtractor(htmlquery.WithSanitizer(sanitizer))

		_, err := e.ExtractComponents(formPage, formscrape.KindImage)

		require.EqualError(t, err, "sanitize failed")
	})
}

func TestExtractNode(t *testing.T) {
	t.Parallel()

	t.Run("scopes extraction to the subtree", func(t *testing.T) {
		t.Parallel()

		doc, err := htmlquery.Parse(`<input type="text" id="outside">
<div id="panel"><input type="text" id="inside"></div>`)
		require.NoError(t, err)

		nodes, err := doc.FindByID("panel")
		require.NoError(t, err)
		require.Len(t, nodes, 1)

		resp, err := htmlquery.ExtractNode(nodes[0], formscrape.KindInputText)

		require.NoError(t, err)
		require.Len(t, resp.InputTexts, 1)
		assert.Equal(t, formscrape.String("inside"), resp.InputTexts[0].ID)
	})

	t.Run("includes the node itself", func(t *testing.T) {
		t.Parallel()

		doc, err := htmlquery.Parse(`<table id="a"><tr><td>1</td></tr></table><table id="b"><tr><td>2</td></tr></table>`)
		require.NoError(t, err)

		nodes, err := doc.FindByID("b")
		require.NoError(t, err)
		require.Len(t, nodes, 1)

		resp, err := htmlquery.ExtractNode(nodes[0], formscrape.KindDataGrid)

		require.NoError(t, err)
		require.Len(t, resp.Grids, 1)
		assert.Equal(t, formscrape.String("b"), resp.Grids[0].ID)
		assert.Equal(t, []formscrape.Column{{Text: "2"}}, resp.Grids[0].Lines[0].Columns)
	})
}
