package config

// Settings is the content of a settings file.
type Settings struct {
	Editor     EditorSettings      `toml:"editor" yaml:"editor"`
	Styles     []StyleSettings     `toml:"styles" yaml:"styles"`
	Indicators []IndicatorSettings `toml:"indicators" yaml:"indicators"`
	Margins    []MarginSettings    `toml:"margins" yaml:"margins"`
	// Elements maps element names such as "caret.line.back" to colours.
	Elements map[string]string `toml:"elements" yaml:"elements"`
	// Keys maps key specifications such as "Ctrl+Z" to command names.
	Keys map[string]string `toml:"keys" yaml:"keys"`
}

// EditorSettings are view-wide options. Empty or zero values keep the
// current setting.
type EditorSettings struct {
	TabWidth             int    `toml:"tab_width" yaml:"tab_width"`
	UndoSelectionHistory string `toml:"undo_selection_history" yaml:"undo_selection_history"`
	Bidirectional        string `toml:"bidirectional" yaml:"bidirectional"`
	Wrap                 string `toml:"wrap" yaml:"wrap"`
	WhiteSpace           string `toml:"whitespace" yaml:"whitespace"`
	Zoom                 int    `toml:"zoom" yaml:"zoom"`
	CaretStyle           string `toml:"caret_style" yaml:"caret_style"`
	CaretWidth           int    `toml:"caret_width" yaml:"caret_width"`
	CaretPeriodMS        int    `toml:"caret_period_ms" yaml:"caret_period_ms"`
	ExtraAscent          int    `toml:"extra_ascent" yaml:"extra_ascent"`
	ExtraDescent         int    `toml:"extra_descent" yaml:"extra_descent"`
	ControlCharSymbol    int    `toml:"control_char_symbol" yaml:"control_char_symbol"`
	FoldDisplayText      string `toml:"fold_display_text" yaml:"fold_display_text"`
}

// StyleSettings override one style. Size is in points.
type StyleSettings struct {
	Index                   int     `toml:"index" yaml:"index"`
	Font                    string  `toml:"font" yaml:"font"`
	Size                    float64 `toml:"size" yaml:"size"`
	Weight                  int     `toml:"weight" yaml:"weight"`
	Bold                    bool    `toml:"bold" yaml:"bold"`
	Italic                  bool    `toml:"italic" yaml:"italic"`
	Fore                    string  `toml:"fore" yaml:"fore"`
	Back                    string  `toml:"back" yaml:"back"`
	EOLFilled               bool    `toml:"eol_filled" yaml:"eol_filled"`
	Underline               bool    `toml:"underline" yaml:"underline"`
	Case                    string  `toml:"case" yaml:"case"`
	Visible                 *bool   `toml:"visible" yaml:"visible"`
	Changeable              *bool   `toml:"changeable" yaml:"changeable"`
	Hotspot                 bool    `toml:"hotspot" yaml:"hotspot"`
	InvisibleRepresentation string  `toml:"invisible_representation" yaml:"invisible_representation"`
}

// IndicatorSettings override one indicator.
type IndicatorSettings struct {
	Index        int     `toml:"index" yaml:"index"`
	Style        string  `toml:"style" yaml:"style"`
	Fore         string  `toml:"fore" yaml:"fore"`
	HoverStyle   string  `toml:"hover_style" yaml:"hover_style"`
	HoverFore    string  `toml:"hover_fore" yaml:"hover_fore"`
	Under        bool    `toml:"under" yaml:"under"`
	FillAlpha    *int    `toml:"fill_alpha" yaml:"fill_alpha"`
	OutlineAlpha *int    `toml:"outline_alpha" yaml:"outline_alpha"`
	StrokeWidth  float64 `toml:"stroke_width" yaml:"stroke_width"`
	ValueFore    bool    `toml:"value_fore" yaml:"value_fore"`
}

// MarginSettings override one margin.
type MarginSettings struct {
	Index     int     `toml:"index" yaml:"index"`
	Type      string  `toml:"type" yaml:"type"`
	Width     int     `toml:"width" yaml:"width"`
	Mask      *uint32 `toml:"mask" yaml:"mask"`
	Sensitive bool    `toml:"sensitive" yaml:"sensitive"`
	Back      string  `toml:"back" yaml:"back"`
}
