package export

import (
	"bytes"
	"strings"

	docx "github.com/fumiama/go-docx"

	"github.com/memoirhq/memoir-backend/internal/model"
)

// BlockKind tags one element of the structured document-object stream.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockQuote     BlockKind = "quote"
)

// Block is one ordered element of the structured document projection.
type Block struct {
	Kind BlockKind
	Text string
}

// DocumentBlocks derives the ordered heading/paragraph sequence from the
// aggregate: title heading, subtitle paragraph, emphasized quote when
// present, then one paragraph per newline-delimited narrative segment.
func DocumentBlocks(d *model.AutobiographyData) []Block {
	blocks := []Block{
		{Kind: BlockHeading, Text: d.Customizations.Title},
		{Kind: BlockParagraph, Text: d.Customizations.Subtitle},
	}
	if d.Customizations.Quote != "" {
		blocks = append(blocks, Block{Kind: BlockQuote, Text: `"` + d.Customizations.Quote + `"`})
	}
	for _, para := range strings.Split(d.GeneratedStory, "\n") {
		blocks = append(blocks, Block{Kind: BlockParagraph, Text: para})
	}
	return blocks
}

// RenderDOCX serializes the structured block stream into a binary document
// container.
func RenderDOCX(d *model.AutobiographyData) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	for _, block := range DocumentBlocks(d) {
		p := doc.AddParagraph()
		switch block.Kind {
		case BlockHeading:
			p.AddText(block.Text).Size("48").Bold()
		case BlockQuote:
			p.AddText(block.Text).Italic()
		default:
			p.AddText(block.Text)
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
