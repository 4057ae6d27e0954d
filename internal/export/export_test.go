package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memoirhq/memoir-backend/internal/model"
)

func exportFixture() *model.AutobiographyData {
	d := model.NewAutobiography()
	d.Customizations.Title = "A Life Remembered"
	d.Customizations.Subtitle = "Seventy years in three chapters"
	d.Customizations.Quote = "Not all those who wander are lost"
	d.GeneratedStory = "It began in a small town.\nSchool was a refuge.\nThen everything changed."
	return d
}

func TestRenderPDFProducesDocument(t *testing.T) {
	out, err := RenderPDF(exportFixture())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(string(out), "%PDF-"), "output starts with the PDF magic")
}

func TestRenderPDFAllFontFamilies(t *testing.T) {
	for _, ff := range []model.FontFamily{model.FontSerif, model.FontSans, model.FontMono} {
		d := exportFixture()
		d.Customizations.FontFamily = ff
		out, err := RenderPDF(d)
		require.NoError(t, err, string(ff))
		assert.NotEmpty(t, out, string(ff))
	}
}

func TestRenderPDFLongStoryPaginated(t *testing.T) {
	d := exportFixture()
	d.GeneratedStory = strings.Repeat("A sentence that fills the line with ordinary words. ", 400)
	out, err := RenderPDF(d)
	require.NoError(t, err)
	assert.Greater(t, len(out), 2000, "multi-page output is substantially larger")
}

func TestDocumentBlocksOrdering(t *testing.T) {
	blocks := DocumentBlocks(exportFixture())

	require.Len(t, blocks, 6)
	assert.Equal(t, Block{Kind: BlockHeading, Text: "A Life Remembered"}, blocks[0])
	assert.Equal(t, Block{Kind: BlockParagraph, Text: "Seventy years in three chapters"}, blocks[1])
	assert.Equal(t, Block{Kind: BlockQuote, Text: `"Not all those who wander are lost"`}, blocks[2])
	assert.Equal(t, Block{Kind: BlockParagraph, Text: "It began in a small town."}, blocks[3])
	assert.Equal(t, Block{Kind: BlockParagraph, Text: "Then everything changed."}, blocks[5])
}

func TestDocumentBlocksOmitsEmptyQuote(t *testing.T) {
	d := exportFixture()
	d.Customizations.Quote = ""
	blocks := DocumentBlocks(d)
	for _, b := range blocks {
		assert.NotEqual(t, BlockQuote, b.Kind)
	}
}

func TestRenderDOCXProducesArchive(t *testing.T) {
	out, err := RenderDOCX(exportFixture())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "PK", string(out[:2]), "docx containers are zip archives")
}
