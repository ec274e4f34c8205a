// Copyright © 2026 The mpvedit authors

package theme

// Colors are the editor colours derived from a palette.
type Colors struct {
	Background       Color
	GutterBackground Color
	LineNumber       Color
	LineNumberActive Color
	Text             Color
	Selection        Color
	Cursor           Color
	Divider          Color
	ScrollThumb      Color
	ScrollThumbDown  Color
	ScrollTrack      Color
	CompletionBg     Color
	CompletionCorner Color
	SymbolBarBg      Color
	SymbolBarText    Color
	CurrentLineBg    Color
	BracketHighlight Color
	BracketUnderline Color
	BlockLine        Color
	BlockLineCurrent Color
}

// BuildColors derives the editor colours from p.
func BuildColors(p Palette) Colors {
	return Colors{
		Background:       p.Surface,
		GutterBackground: p.SurfaceContainerHighest,
		LineNumber:       p.OnSurfaceVariant.WithAlpha(0.55),
		LineNumberActive: p.Primary,
		Text:             p.OnSurface,
		Selection:        p.PrimaryContainer.WithAlpha(0.45),
		Cursor:           p.Primary,
		Divider:          p.OutlineVariant.WithAlpha(0.35),
		ScrollThumb:      p.Primary.WithAlpha(0.38),
		ScrollThumbDown:  p.Primary.WithAlpha(0.85),
		ScrollTrack:      p.SurfaceVariant.WithAlpha(0.20),
		CompletionBg:     p.SurfaceContainerHighest,
		CompletionCorner: p.Primary.WithAlpha(0.5),
		SymbolBarBg:      p.SurfaceContainerHighest,
		SymbolBarText:    p.OnSurface,
		CurrentLineBg:    p.OnSurface.WithAlpha(0.08),
		BracketHighlight: p.PrimaryContainer.WithAlpha(0.35),
		BracketUnderline: p.Primary,
		BlockLine:        p.OutlineVariant.WithAlpha(0.20),
		BlockLineCurrent: p.Primary.WithAlpha(0.30),
	}
}

// Slot identifies one colour slot of the editor widget.
type Slot int

const (
	WholeBackground Slot = iota
	LineNumberBackground
	LineNumber
	LineNumberCurrent
	TextNormal
	SelectedTextBackground
	SelectionInsert
	LineDivider
	CurrentLine
	ScrollBarTrack
	ScrollBarThumb
	ScrollBarThumbPressed
	CompletionWindowBackground
	CompletionWindowCorner
	CompletionWindowTextPrimary
	CompletionWindowTextSecondary
	CompletionWindowItemCurrent
	DelimiterBackground
	DelimiterUnderline
	DelimiterForeground
	BlockLine
	BlockLineCurrent

	slotCount
)

var slotNames = [slotCount]string{
	WholeBackground:               "whole-background",
	LineNumberBackground:          "line-number-background",
	LineNumber:                    "line-number",
	LineNumberCurrent:             "line-number-current",
	TextNormal:                    "text-normal",
	SelectedTextBackground:        "selected-text-background",
	SelectionInsert:               "selection-insert",
	LineDivider:                   "line-divider",
	CurrentLine:                   "current-line",
	ScrollBarTrack:                "scroll-bar-track",
	ScrollBarThumb:                "scroll-bar-thumb",
	ScrollBarThumbPressed:         "scroll-bar-thumb-pressed",
	CompletionWindowBackground:    "completion-window-background",
	CompletionWindowCorner:        "completion-window-corner",
	CompletionWindowTextPrimary:   "completion-window-text-primary",
	CompletionWindowTextSecondary: "completion-window-text-secondary",
	CompletionWindowItemCurrent:   "completion-window-item-current",
	DelimiterBackground:           "delimiter-background",
	DelimiterUnderline:            "delimiter-underline",
	DelimiterForeground:           "delimiter-foreground",
	BlockLine:                     "block-line",
	BlockLineCurrent:              "block-line-current",
}

func (s Slot) String() string {
	if s < 0 || s >= slotCount {
		return "unknown"
	}
	return slotNames[s]
}

// Slots returns every slot in declaration order.
func Slots() []Slot {
	out := make([]Slot, slotCount)
	for i := range out {
		out[i] = Slot(i)
	}
	return out
}

// SlotByName finds a slot by its String form.
func SlotByName(name string) (Slot, bool) {
	for i, n := range slotNames {
		if n == name {
			return Slot(i), true
		}
	}
	return 0, false
}

// Scheme is a set of slot colours. The zero value has no slots set.
type Scheme struct {
	colors [slotCount]Color
	set    [slotCount]bool
}

// NewScheme returns an empty scheme.
func NewScheme() *Scheme { return &Scheme{} }

// Set assigns a colour to a slot. Unknown slots are ignored.
func (s *Scheme) Set(slot Slot, c Color) {
	if slot < 0 || slot >= slotCount {
		return
	}
	s.colors[slot] = c
	s.set[slot] = true
}

// Get returns the slot colour and whether it has been set.
func (s *Scheme) Get(slot Slot) (Color, bool) {
	if slot < 0 || slot >= slotCount {
		return 0, false
	}
	return s.colors[slot], s.set[slot]
}

// Apply writes every palette-derived colour into its slot.
func (s *Scheme) Apply(t Colors) {
	// editor chrome
	s.Set(WholeBackground, t.Background)
	s.Set(LineNumberBackground, t.GutterBackground)
	s.Set(LineNumber, t.LineNumber)
	s.Set(LineNumberCurrent, t.LineNumberActive)
	s.Set(TextNormal, t.Text)
	s.Set(SelectedTextBackground, t.Selection)
	s.Set(SelectionInsert, t.Cursor)
	s.Set(LineDivider, t.Divider)
	s.Set(CurrentLine, t.CurrentLineBg)

	s.Set(ScrollBarTrack, t.ScrollTrack)
	s.Set(ScrollBarThumb, t.ScrollThumb)
	s.Set(ScrollBarThumbPressed, t.ScrollThumbDown)

	// completion popup
	s.Set(CompletionWindowBackground, t.CompletionBg)
	s.Set(CompletionWindowCorner, t.CompletionCorner)
	s.Set(CompletionWindowTextPrimary, t.Text)
	s.Set(CompletionWindowTextSecondary, t.LineNumber)
	s.Set(CompletionWindowItemCurrent, t.CurrentLineBg)

	s.Set(DelimiterBackground, t.BracketHighlight)
	s.Set(DelimiterUnderline, t.BracketUnderline)
	s.Set(DelimiterForeground, t.Text)

	s.Set(BlockLine, t.BlockLine)
	s.Set(BlockLineCurrent, t.BlockLineCurrent)
}
