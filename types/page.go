package types

// PageID indexes the display pages, 0..N-1.
type PageID uint8

// FieldID names one text field on one page. IDs are unique across pages.
type FieldID uint16

// Anchor selects the side a text field is aligned to.
type Anchor uint8

const (
	AnchorLeft Anchor = iota
	AnchorRight
)

// Field is the fixed layout of one text field.
type Field struct {
	ID     FieldID
	Page   PageID
	Anchor Anchor
	Y      int16 // baseline, pixels from the top
	Scale  uint8 // 0 and 1 both mean unscaled
	Text   string
}
