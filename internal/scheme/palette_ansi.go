package scheme

// ANSI uses xterm 256-color indices for terminals without truecolor.
var ANSI = Scheme{
	White:     Ramp{"250", "252", "254", "231"},
	Black:     Ramp{"16", "233", "235", "237"},
	Gray:      Ramp{"238", "240", "242", "248"},
	Red:       Ramp{"52", "88", "124", "167"},
	Orange:    Ramp{"94", "130", "166", "208"},
	Yellow:    Ramp{"100", "142", "178", "220"},
	LimeGreen: Ramp{"64", "70", "76", "118"},
	Green:     Ramp{"22", "28", "34", "77"},
	BlueGreen: Ramp{"29", "36", "43", "79"},
	Cyan:      Ramp{"23", "30", "37", "80"},
	Blue:      Ramp{"17", "24", "31", "68"},
	DeepBlue:  Ramp{"17", "18", "19", "63"},
	Purple:    Ramp{"53", "54", "91", "134"},
	Magenta:   Ramp{"89", "126", "163", "170"},
	RedPink:   Ramp{"89", "125", "161", "204"},
	Primary:   Ramp{"54", "55", "92", "129"},
	Secondary: Ramp{"58", "100", "136", "178"},
}
