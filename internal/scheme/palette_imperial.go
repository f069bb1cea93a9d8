package scheme

// Imperial is the baseline dark palette.
var Imperial = Scheme{
	White:     Ramp{"#DEDFE3", "#E6E7EA", "#EEEFF1", "#F6F6F7"},
	Black:     Ramp{"#0F1014", "#181A1F", "#22252B", "#2B2F37"},
	Gray:      Ramp{"#3B3B3B", "#4F4F4F", "#666666", "#AAAAAA"},
	Red:       Ramp{"#480F0F", "#6D1717", "#921F1F", "#D33C3C"},
	Orange:    Ramp{"#482C0F", "#6D4217", "#92591F", "#D3893C"},
	Yellow:    Ramp{"#756600", "#A39000", "#D1B800", "#FFE814"},
	LimeGreen: Ramp{"#2C4611", "#3E6318", "#51801F", "#7EC43A"},
	Green:     Ramp{"#186218", "#208420", "#28A428", "#4CD24C"},
	BlueGreen: Ramp{"#206A52", "#2A8A6B", "#34AA84", "#5BCFA9"},
	Cyan:      Ramp{"#0F2C48", "#17426D", "#1F5992", "#3C89D3"},
	Blue:      Ramp{"#162B41", "#1F3D5C", "#294F76", "#4579AE"},
	DeepBlue:  Ramp{"#1B1B41", "#27275D", "#333378", "#5656B3"},
	Purple:    Ramp{"#3C1D48", "#562A67", "#703686", "#A85CC5"},
	Magenta:   Ramp{"#5C1D4E", "#802A6D", "#A4368C", "#D05DB6"},
	RedPink:   Ramp{"#5C1D33", "#802A48", "#A4365C", "#D05D86"},
	Primary:   Ramp{"#300057", "#4B0088", "#6600B9", "#8C12F0"},
	Secondary: Ramp{"#574B00", "#7D6C00", "#A38C00", "#D3B800"},
}
