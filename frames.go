// frames.go
package throbber

// Predefined frame tables. Each is a cyclic sequence of single-line
// glyphs; pass one to Frames/SetFrames or supply your own. The slices
// are shared — callers must not modify them.
var (
	// DefaultFrames is a 10-frame braille spinner.
	DefaultFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

	// CircleFrames is a rotating half-filled circle.
	CircleFrames = []string{"◐", "◓", "◑", "◒"}

	// RotateFrames is the classic rotating bar.
	RotateFrames = []string{"|", "/", "-", "\\"}

	// MoveEqFrames and MoveMinFrames bounce a single = or - inside
	// brackets.
	MoveEqFrames  = []string{"[=  ]", "[ = ]", "[  =]", "[ = ]"}
	MoveMinFrames = []string{"[-  ]", "[ - ]", "[  -]", "[ - ]"}

	// MoveEqLongFrames and MoveMinLongFrames are the wider variants.
	MoveEqLongFrames = []string{
		"[=    ]", "[==   ]", "[ ==  ]", "[  == ]", "[   ==]", "[    =]",
		"[   ==]", "[  == ]", "[ ==  ]", "[==   ]",
	}
	MoveMinLongFrames = []string{
		"[-    ]", "[--   ]", "[ --  ]", "[  -- ]", "[   --]", "[    -]",
		"[   --]", "[  -- ]", "[ --  ]", "[--   ]",
	}
)
