package inspect

// ComponentSummary is one row of list_components output.
type ComponentSummary struct {
	ID      uint64  `json:"id"`
	Visible bool    `json:"visible"`
	Enabled bool    `json:"enabled"`
	X       float32 `json:"x"`
	Y       float32 `json:"y"`
	Width   float32 `json:"width"`
	Height  float32 `json:"height"`
}

type ListComponentsOutput struct {
	Count      int                `json:"count"`
	Components []ComponentSummary `json:"components"`
}

type GetComponentInput struct {
	ID uint64 `json:"id" jsonschema:"required,Component id to look up"`
}

// AccessibilityProps mirrors the semantic props a screen-reader
// backend holds for a component.
type AccessibilityProps struct {
	Role        string `json:"role,omitempty"`
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
	Value       string `json:"value,omitempty"`
	Focusable   bool   `json:"focusable"`
	Focused     bool   `json:"focused"`
	Disabled    bool   `json:"disabled"`
	Hidden      bool   `json:"hidden"`
}

type GetComponentOutput struct {
	ComponentSummary
	Accessibility *AccessibilityProps `json:"accessibility,omitempty"`
}

type HitTestInput struct {
	X float32 `json:"x" jsonschema:"required,Point x in logical pixels"`
	Y float32 `json:"y" jsonschema:"required,Point y in logical pixels"`
}

type HitTestOutput struct {
	Found bool   `json:"found"`
	ID    uint64 `json:"id,omitempty"`
}

type AnnounceInput struct {
	Text     string `json:"text" jsonschema:"required,Text for the screen reader to speak"`
	Priority string `json:"priority,omitempty" jsonschema:"Announcement priority: low, medium or high (default: medium)"`
}

type AnnounceOutput struct {
	Queued        bool   `json:"queued"`
	ReaderEnabled bool   `json:"reader_enabled"`
	Backend       string `json:"backend"`
}

type SetFocusInput struct {
	ID    uint64 `json:"id,omitempty" jsonschema:"Component id to focus"`
	Clear bool   `json:"clear,omitempty" jsonschema:"When true, clear the focus instead of setting it"`
}

type SetFocusOutput struct {
	Focused uint64 `json:"focused"`
	Cleared bool   `json:"cleared"`
}
