package render

// TextRenderer returns the rewritten text as a UTF-8 plain-text document.
type TextRenderer struct{}

func (TextRenderer) Format() Format { return FormatText }

func (TextRenderer) Render(text string) (Output, error) {
	return Output{Body: []byte(text), ContentType: ContentTypeText, Extension: string(FormatText)}, nil
}
