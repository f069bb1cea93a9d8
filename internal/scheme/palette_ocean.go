package scheme

// Ocean is a cool blue-green palette.
var Ocean = Scheme{
	White:     Ramp{"#C6CDD6", "#D5DAE1", "#E4E8EC", "#F3F5F7"},
	Black:     Ramp{"#03060A", "#0C1724", "#15283D", "#1E3957"},
	Gray:      Ramp{"#2F4155", "#425A75", "#6A829E", "#A3B5C9"},
	Red:       Ramp{"#5A1313", "#801C1C", "#A62424", "#E04848"},
	Orange:    Ramp{"#5A3413", "#80491C", "#A65F24", "#E08E48"},
	Yellow:    Ramp{"#6A5E0E", "#948314", "#BEA81A", "#E8D14A"},
	LimeGreen: Ramp{"#345A13", "#497F1C", "#5FA524", "#8CDB48"},
	Green:     Ramp{"#135A2A", "#1C7F3C", "#24A54E", "#48DB76"},
	BlueGreen: Ramp{"#0E5C59", "#14807C", "#1AA49F", "#47D1CC"},
	Cyan:      Ramp{"#0E4E5C", "#146D80", "#1A8CA4", "#47B9D1"},
	Blue:      Ramp{"#0E3560", "#144B88", "#1A61B0", "#4A8DDA"},
	DeepBlue:  Ramp{"#101D5C", "#172A80", "#1E36A4", "#4A64D1"},
	Purple:    Ramp{"#36155C", "#4C1E80", "#6227A4", "#9052D1"},
	Magenta:   Ramp{"#5C155A", "#801E7E", "#A427A1", "#D152CE"},
	RedPink:   Ramp{"#5C1538", "#801E4F", "#A42766", "#D15293"},
	Primary:   Ramp{"#063F5C", "#0A5A84", "#0E75AC", "#3AA3DA"},
	Secondary: Ramp{"#0D5446", "#137662", "#19987E", "#45C9AD"},
}
