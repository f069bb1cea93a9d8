package scheme

// Monochrome favors visibility on low-contrast terminals. Every hue ramp
// collapses to grays so only brightness carries meaning.
var Monochrome = Scheme{
	White:     Ramp{"#D0D0D0", "#E0E0E0", "#F0F0F0", "#FFFFFF"},
	Black:     Ramp{"#000000", "#0A0A0A", "#161616", "#222222"},
	Gray:      Ramp{"#404040", "#585858", "#707070", "#B0B0B0"},
	Red:       Ramp{"#3A3A3A", "#5A5A5A", "#7A7A7A", "#C0C0C0"},
	Orange:    Ramp{"#3A3A3A", "#5A5A5A", "#7A7A7A", "#C0C0C0"},
	Yellow:    Ramp{"#606060", "#909090", "#C0C0C0", "#F0F0F0"},
	LimeGreen: Ramp{"#3A3A3A", "#5A5A5A", "#7A7A7A", "#C0C0C0"},
	Green:     Ramp{"#3A3A3A", "#5A5A5A", "#7A7A7A", "#C0C0C0"},
	BlueGreen: Ramp{"#3A3A3A", "#5A5A5A", "#7A7A7A", "#C0C0C0"},
	Cyan:      Ramp{"#3A3A3A", "#5A5A5A", "#7A7A7A", "#C0C0C0"},
	Blue:      Ramp{"#303030", "#484848", "#606060", "#989898"},
	DeepBlue:  Ramp{"#303030", "#484848", "#606060", "#989898"},
	Purple:    Ramp{"#3A3A3A", "#5A5A5A", "#7A7A7A", "#C0C0C0"},
	Magenta:   Ramp{"#3A3A3A", "#5A5A5A", "#7A7A7A", "#C0C0C0"},
	RedPink:   Ramp{"#3A3A3A", "#5A5A5A", "#7A7A7A", "#C0C0C0"},
	Primary:   Ramp{"#2A2A2A", "#505050", "#FFFFFF", "#E0E0E0"},
	Secondary: Ramp{"#C8C8C8", "#9A9A9A", "#6A6A6A", "#3A3A3A"},
}
